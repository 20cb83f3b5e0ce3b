package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// fakeDriver answers prompts from a queue and records what was asked
type fakeDriver struct {
	answers  []string
	selected int
	asked    []string
	defaults []string
	err      error
}

func (f *fakeDriver) next(message, def string, validator func(string) error) (string, error) {
	f.asked = append(f.asked, message)
	f.defaults = append(f.defaults, def)
	if f.err != nil {
		return "", f.err
	}
	for len(f.answers) > 0 {
		answer := f.answers[0]
		f.answers = f.answers[1:]
		if validator != nil && validator(answer) != nil {
			continue
		}
		return answer, nil
	}
	return "", errors.New("no more answers")
}

func (f *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return f.next(cfg.Message, cfg.Default, cfg.Validator)
}

func (f *fakeDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	return f.next(cfg.Message, cfg.Default, nil)
}

func (f *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	f.asked = append(f.asked, cfg.Message)
	if f.err != nil {
		return 0, f.err
	}
	return f.selected, nil
}

func TestFillComponent_Button(t *testing.T) {
	driver := &fakeDriver{answers: []string{"Go", "https://example.com"}}
	c := models.NewEmptyComponent(models.ComponentTypeButton)

	err := FillComponent(context.Background(), driver, c.Schema(), &c)
	if err != nil {
		t.Fatalf("FillComponent failed: %v", err)
	}

	if got := c.Data.Value("text"); got != "Go" {
		t.Errorf("text = %q, want %q", got, "Go")
	}
	if got := c.Data.Value("url"); got != "https://example.com" {
		t.Errorf("url = %q, want %q", got, "https://example.com")
	}
	if len(c.MissingRequired()) != 0 {
		t.Errorf("expected no missing required fields, got %v", c.MissingRequired())
	}
	if driver.asked[0] != "Button text *" {
		t.Errorf("first prompt = %q, want required marker", driver.asked[0])
	}
}

func TestFillComponent_RequiredRetried(t *testing.T) {
	var errBuf bytes.Buffer
	prev := stderr
	SetOutput(nil, &errBuf, nil)
	defer func() { stderr = prev }()

	// Empty answers for a required field are rejected until a value arrives
	driver := &fakeDriver{answers: []string{"", "https://v.example/1", "", ""}}
	c := models.NewEmptyComponent(models.ComponentTypeVideo)

	if err := FillComponent(context.Background(), driver, c.Schema(), &c); err != nil {
		t.Fatalf("FillComponent failed: %v", err)
	}
	if got := c.Data.Value("videoUrl"); got != "https://v.example/1" {
		t.Errorf("videoUrl = %q", got)
	}
	if got := c.Data.Value("embedCode"); got != "" {
		t.Errorf("optional embedCode = %q, want empty", got)
	}

	driver = &fakeDriver{answers: []string{"", "hello"}}
	rt := models.NewEmptyComponent(models.ComponentTypeRichText)
	if err := FillComponent(context.Background(), driver, rt.Schema(), &rt); err != nil {
		t.Fatalf("FillComponent failed: %v", err)
	}
	if got := rt.Data.Value("content"); got != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
	if len(driver.asked) != 2 {
		t.Errorf("expected the textarea to be asked twice, got %d", len(driver.asked))
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("Content is required")) {
		t.Errorf("expected a required warning, got %q", errBuf.String())
	}
}

func TestFillComponent_Prefilled(t *testing.T) {
	driver := &fakeDriver{answers: []string{"new text", "https://x"}}
	c := models.NewEmptyComponent(models.ComponentTypeButton)
	c.Data.Set("text", "old text")

	if err := FillComponent(context.Background(), driver, c.Schema(), &c); err != nil {
		t.Fatal(err)
	}
	if driver.defaults[0] != "old text" {
		t.Errorf("prompt default = %q, want current value", driver.defaults[0])
	}
}

func TestFillComponent_Aborted(t *testing.T) {
	driver := &fakeDriver{err: ErrAborted}
	c := models.NewEmptyComponent(models.ComponentTypeRichText)

	err := FillComponent(context.Background(), driver, c.Schema(), &c)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("expected ErrAborted, got %v", err)
	}
}

func TestSelectComponentType(t *testing.T) {
	driver := &fakeDriver{selected: 3}
	got, err := SelectComponentType(context.Background(), driver)
	if err != nil {
		t.Fatal(err)
	}
	if got != models.ComponentTypeVideo {
		t.Errorf("got %q, want %q", got, models.ComponentTypeVideo)
	}

	driver = &fakeDriver{selected: -1}
	if _, err := SelectComponentType(context.Background(), driver); err == nil {
		t.Error("expected error when nothing selected")
	}
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name      string
		pairs     []string
		wantOrder []string
		wantVals  map[string]string
		wantErr   bool
	}{
		{
			name:      "simple",
			pairs:     []string{"text=Go", "url=https://a.b/?q=1"},
			wantOrder: []string{"text", "url"},
			wantVals:  map[string]string{"text": "Go", "url": "https://a.b/?q=1"},
		},
		{
			name:      "empty value",
			pairs:     []string{"title="},
			wantOrder: []string{"title"},
			wantVals:  map[string]string{"title": ""},
		},
		{
			name:      "repeated key keeps first position",
			pairs:     []string{"a=1", "b=2", "a=3"},
			wantOrder: []string{"a", "b"},
			wantVals:  map[string]string{"a": "3", "b": "2"},
		},
		{name: "missing equals", pairs: []string{"text"}, wantErr: true},
		{name: "missing key", pairs: []string{"=x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, vals, err := ParseAssignments(tt.pairs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(order) != len(tt.wantOrder) {
				t.Fatalf("order = %v, want %v", order, tt.wantOrder)
			}
			for i := range order {
				if order[i] != tt.wantOrder[i] {
					t.Errorf("order = %v, want %v", order, tt.wantOrder)
				}
			}
			for k, v := range tt.wantVals {
				if vals[k] != v {
					t.Errorf("vals[%q] = %q, want %q", k, vals[k], v)
				}
			}
		})
	}
}
