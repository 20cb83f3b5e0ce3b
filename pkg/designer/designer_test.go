package designer

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
	"github.com/ldbpro/ldbpro-cli/pkg/reorder"
)

// sequentialIDs makes component ids predictable for the duration of a test
func sequentialIDs(t *testing.T) {
	t.Helper()
	n := 0
	restore := models.SetIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	})
	t.Cleanup(restore)
}

// makeTestDesigner builds a designer holding one component per type given
func makeTestDesigner(t *testing.T, types ...models.ComponentType) *Designer {
	t.Helper()
	sequentialIDs(t)
	page := models.NewPage()
	for _, ct := range types {
		page.Components = append(page.Components, models.NewEmptyComponent(ct))
	}
	return New(page)
}

func ids(d *Designer) []string {
	return d.Snapshot().IDs()
}

func TestDesigner_Add(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText)
	d.OpenGallery()

	idx := d.Add(models.ComponentTypeButton)

	if idx != 1 || d.Len() != 2 {
		t.Fatalf("Add() = %d, Len() = %d; want 1, 2", idx, d.Len())
	}
	if i, ok := d.Editing(); !ok || i != 1 {
		t.Errorf("Editing() = %d, %v; want 1, true", i, ok)
	}
	if d.GalleryOpen() {
		t.Error("Add should close the gallery")
	}
	c, _ := d.Component(1)
	if c.Type != models.ComponentTypeButton {
		t.Errorf("appended type = %q", c.Type)
	}
}

func TestDesigner_Move(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		dir    int
		want   []string
		wantOK bool
	}{
		{"first up is a no-op", 0, -1, []string{"id-001", "id-002", "id-003"}, false},
		{"last down is a no-op", 2, 1, []string{"id-001", "id-002", "id-003"}, false},
		{"middle up", 1, -1, []string{"id-002", "id-001", "id-003"}, true},
		{"middle down", 1, 1, []string{"id-001", "id-003", "id-002"}, true},
		{"negative index", -4, 1, []string{"id-001", "id-002", "id-003"}, false},
		{"index past end", 9, -1, []string{"id-001", "id-002", "id-003"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo, models.ComponentTypeButton)
			if ok := d.Move(tt.index, tt.dir); ok != tt.wantOK {
				t.Errorf("Move(%d, %d) = %v, want %v", tt.index, tt.dir, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, ids(d)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDesigner_Move_FollowsEditor(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo)
	_ = d.OpenEditor(0)
	d.Move(0, 1)
	if i, _ := d.Editing(); i != 1 {
		t.Errorf("editor should follow the moved component, Editing() = %d", i)
	}
}

func TestDesigner_DeleteUndo(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo, models.ComponentTypeButton)
	before := d.Snapshot()

	if err := d.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if diff := cmp.Diff([]string{"id-001", "id-003"}, ids(d)); diff != "" {
		t.Errorf("after delete (-want +got):\n%s", diff)
	}
	if !d.CanUndo() {
		t.Fatal("CanUndo() should be true after a delete")
	}

	if !d.UndoDelete() {
		t.Fatal("UndoDelete() = false")
	}
	if diff := cmp.Diff(before, d.Snapshot()); diff != "" {
		t.Errorf("undo should restore the document (-want +got):\n%s", diff)
	}
	if d.CanUndo() || d.UndoDelete() {
		t.Error("undo buffer should be cleared after restoring")
	}
}

func TestDesigner_Delete_OverwritesUndo(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo, models.ComponentTypeButton)
	_ = d.Delete(0)
	_ = d.Delete(0)

	d.UndoDelete()
	if diff := cmp.Diff([]string{"id-002", "id-003"}, ids(d)); diff != "" {
		t.Errorf("only the latest delete is restorable (-want +got):\n%s", diff)
	}
}

func TestDesigner_Undo_IsPositional(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo, models.ComponentTypeButton)
	_ = d.Delete(2) // id-003 captured at index 2
	_ = d.Delete(0) // overwrite: id-001 at index 0
	d.Add(models.ComponentTypeButton)
	d.Add(models.ComponentTypeButton)

	d.UndoDelete()
	if diff := cmp.Diff([]string{"id-001", "id-002", "id-004", "id-005"}, ids(d)); diff != "" {
		t.Errorf("restore uses the numeric index (-want +got):\n%s", diff)
	}
}

func TestDesigner_Undo_ClampsPastEnd(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo)
	_ = d.Delete(1)
	_ = d.Delete(0) // buffer: id-001 at 0, list empty
	d.lastDeleted.index = 5

	d.UndoDelete()
	if diff := cmp.Diff([]string{"id-001"}, ids(d)); diff != "" {
		t.Errorf("stale index should append (-want +got):\n%s", diff)
	}
}

func TestDesigner_Delete_OutOfRange(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText)
	for _, i := range []int{-1, 1, 10} {
		if err := d.Delete(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Delete(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if d.Len() != 1 || d.CanUndo() {
		t.Error("failed deletes must not touch the document or undo buffer")
	}
}

func TestDesigner_Delete_AdjustsEditor(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo, models.ComponentTypeButton)

	_ = d.OpenEditor(2)
	_ = d.Delete(0)
	if i, ok := d.Editing(); !ok || i != 1 {
		t.Errorf("editor should shift down, Editing() = %d, %v", i, ok)
	}

	_ = d.Delete(1)
	if _, ok := d.Editing(); ok {
		t.Error("deleting the edited component closes the editor")
	}
}

func TestDesigner_Drop(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeRichText, models.ComponentTypeVideo, models.ComponentTypeButton)

	if d.Drop(reorder.ArrayMove{}, reorder.DropEvent{ActiveID: "id-002", OverID: "id-002"}) {
		t.Error("dropping on itself should be a no-op")
	}
	if d.Drop(reorder.ArrayMove{}, reorder.DropEvent{ActiveID: "id-002"}) {
		t.Error("dropping outside a target should be a no-op")
	}
	if diff := cmp.Diff([]string{"id-001", "id-002", "id-003"}, ids(d)); diff != "" {
		t.Fatalf("no-op drops changed the order (-want +got):\n%s", diff)
	}

	_ = d.OpenEditor(0)
	if !d.Drop(reorder.ArrayMove{}, reorder.DropEvent{ActiveID: "id-001", OverID: "id-003"}) {
		t.Fatal("Drop() = false")
	}
	if diff := cmp.Diff([]string{"id-002", "id-003", "id-001"}, ids(d)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if i, _ := d.Editing(); i != 2 {
		t.Errorf("editor should follow the dragged component, Editing() = %d", i)
	}
}

func TestDesigner_EditField(t *testing.T) {
	d := makeTestDesigner(t, models.ComponentTypeButton, models.ComponentTypeButton)
	other := d.Snapshot().Components[1]

	if err := d.EditField(0, "text", "Go"); err != nil {
		t.Fatalf("EditField: %v", err)
	}
	c, _ := d.Component(0)
	if c.Data.Value("text") != "Go" || c.Data.Value("url") != "" {
		t.Errorf("data = text:%q url:%q", c.Data.Value("text"), c.Data.Value("url"))
	}
	if diff := cmp.Diff([]string{"text", "url"}, c.Data.Keys()); diff != "" {
		t.Errorf("editing must not change the key set (-want +got):\n%s", diff)
	}
	if got, _ := d.Component(1); !cmp.Equal(other, got) {
		t.Error("other components must be untouched")
	}

	if err := d.EditField(0, "color", "red"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field error = %v", err)
	}
	if err := d.EditField(3, "text", "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out of range error = %v", err)
	}
}

func TestDesigner_SetPageName(t *testing.T) {
	d := New(models.NewPage())
	d.SetPageName("")
	if d.PageName() != "" || !d.PageNameMissing() {
		t.Error("empty page name should be stored verbatim and flagged")
	}
	d.SetPageName("  Landing  ")
	if d.PageName() != "  Landing  " || d.PageNameMissing() {
		t.Errorf("PageName() = %q", d.PageName())
	}
}

func TestDesigner_OnChange(t *testing.T) {
	d := makeTestDesigner(t)
	var calls []int
	d.OnChange(func(p models.PageDataModel) { calls = append(calls, len(p.Components)) })

	d.Add(models.ComponentTypeVideo)
	_ = d.EditField(0, "videoUrl", "https://v")
	d.CloseEditor() // not a document change
	d.OpenGallery() // not a document change
	d.Move(0, 1)    // no-op, no notification
	_ = d.Delete(0)
	d.UndoDelete()
	d.SetPageName("x")

	if diff := cmp.Diff([]int{1, 1, 0, 1, 1}, calls); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestDesigner_SubmitGate(t *testing.T) {
	d := makeTestDesigner(t)
	if d.CanSubmit() {
		t.Error("CanSubmit() without an open editor should be false")
	}
	if err := d.Submit(); !errors.Is(err, ErrNotEditing) {
		t.Errorf("Submit() error = %v, want ErrNotEditing", err)
	}

	d.Add(models.ComponentTypeVideo)
	if d.CanSubmit() {
		t.Error("empty required field should block submit")
	}
	if err := d.Submit(); !errors.Is(err, ErrRequiredFieldsMissing) {
		t.Errorf("Submit() error = %v, want ErrRequiredFieldsMissing", err)
	}
	if _, ok := d.Editing(); !ok {
		t.Error("a blocked submit keeps the editor open")
	}

	_ = d.EditField(0, "videoUrl", " ")
	if !d.CanSubmit() {
		t.Error("whitespace counts as present; optional embedCode is not required")
	}
	if err := d.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, ok := d.Editing(); ok {
		t.Error("Submit should close the editor")
	}
}

func TestDesigner_CloseWithoutSubmit(t *testing.T) {
	d := makeTestDesigner(t)
	d.Add(models.ComponentTypeButton)
	d.CloseEditor()
	if _, ok := d.Editing(); ok {
		t.Error("closing is always allowed")
	}
	if d.Len() != 1 {
		t.Error("an incomplete component stays in the document")
	}
}

// End to end: add a button, fill the required fields, close, export JSON
func TestDesigner_ButtonScenario(t *testing.T) {
	d := makeTestDesigner(t)
	d.SetPageName("Landing")

	d.Add(models.ComponentTypeButton)
	if d.Len() != 1 {
		t.Fatalf("Len() = %d", d.Len())
	}
	if i, ok := d.Editing(); !ok || i != 0 {
		t.Fatalf("Editing() = %d, %v", i, ok)
	}
	if d.CanSubmit() {
		t.Fatal("text and url are empty, submit must be blocked")
	}

	_ = d.EditField(0, "text", "Go")
	_ = d.EditField(0, "url", "https://x.com")
	if !d.CanSubmit() {
		t.Fatal("submit should be allowed once required fields are set")
	}
	d.CloseEditor()

	raw, err := json.Marshal(d.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var parsed struct {
		PageName   string `json:"pageName"`
		Components []struct {
			ID   string            `json:"id"`
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		} `json:"components"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.PageName != "Landing" || len(parsed.Components) != 1 {
		t.Fatalf("parsed = %+v", parsed)
	}
	got := parsed.Components[0]
	if got.Type != "button" || got.ID == "" {
		t.Errorf("component = %+v", got)
	}
	if diff := cmp.Diff(map[string]string{"text": "Go", "url": "https://x.com"}, got.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}
