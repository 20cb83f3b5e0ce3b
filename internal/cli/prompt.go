package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// ErrAborted is returned when the user interrupts a prompt
var ErrAborted = errors.New("prompt aborted")

// InputConfig configures a single-line prompt
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// TextAreaConfig configures a multi-line prompt
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// SelectConfig configures a single-choice prompt
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
}

// PromptDriver abstracts the terminal prompts so the form flow can be
// tested without a real terminal
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns a PromptDriver backed by survey
func NewSurveyDriver() PromptDriver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	for i, option := range cfg.Options {
		if option == out {
			return i, nil
		}
	}
	return -1, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// FieldLabel returns the prompt label, marking required fields with " *"
func FieldLabel(f models.FieldSchema) string {
	if f.Required {
		return f.Label + " *"
	}
	return f.Label
}

// requiredValidator rejects empty answers. Whitespace counts as a value,
// matching the submit gate.
func requiredValidator(label string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// FillComponent prompts for every field of schema, pre-filled from the
// component's current data, and stores the answers in the component
func FillComponent(ctx context.Context, driver PromptDriver, schema models.ComponentSchema, component *models.PageComponent) error {
	for _, f := range schema.Fields {
		current := component.Data.Value(f.Name)

		var (
			value string
			err   error
		)
		switch f.Kind {
		case models.FieldKindTextarea:
			help := "Enter a blank line to finish"
			if f.Required {
				help = "Required. " + help
			}
			for {
				value, err = driver.TextArea(ctx, TextAreaConfig{
					Message: FieldLabel(f),
					Default: current,
					Help:    help,
				})
				if err != nil || !f.Required || value != "" {
					break
				}
				PrintWarning("%s is required", f.Label)
			}
		default:
			cfg := InputConfig{Message: FieldLabel(f), Default: current}
			if f.Required {
				cfg.Validator = requiredValidator(f.Label)
			}
			value, err = driver.Input(ctx, cfg)
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Name, err)
		}

		component.Data.Set(f.Name, value)
	}
	return nil
}

// SelectComponentType asks the user to pick one entry of the gallery
func SelectComponentType(ctx context.Context, driver PromptDriver) (models.ComponentType, error) {
	types := models.ComponentTypes()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = t.DisplayName()
	}

	idx, err := driver.Select(ctx, SelectConfig{Message: "Add a component", Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(types) {
		return "", fmt.Errorf("no component type selected")
	}
	return types[idx], nil
}

// ParseAssignments parses field=value pairs from --set flags
func ParseAssignments(pairs []string) ([]string, map[string]string, error) {
	var order []string
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, nil, fmt.Errorf("invalid assignment %q (expected field=value)", pair)
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = value
	}
	return order, values, nil
}
