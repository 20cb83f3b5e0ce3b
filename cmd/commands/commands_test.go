package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
	"github.com/ldbpro/ldbpro-cli/pkg/files"
)

// setupProject initializes a project in a fresh directory
func setupProject(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { os.Chdir(oldDir) })

	require.NoError(t, files.InitProjectStructure())
}

// execute runs the command tree and returns what it printed
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut, strings.NewReader(""))
	t.Cleanup(func() { cli.SetOutput(os.Stdout, os.Stderr, os.Stdin) })

	root := NewRootCommand("test")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func showJSON(t *testing.T) ShowResult {
	t.Helper()
	out, _, err := execute(t, "show", "-o", "json")
	require.NoError(t, err)
	var result ShowResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func types(result ShowResult) []string {
	var out []string
	for _, c := range result.Components {
		out = append(out, string(c.Type))
	}
	return out
}

// scriptedDriver answers prompts from a fixed list
type scriptedDriver struct {
	answers []string
	choice  int
}

func (d *scriptedDriver) next() string {
	if len(d.answers) == 0 {
		return ""
	}
	a := d.answers[0]
	d.answers = d.answers[1:]
	return a
}

func (d *scriptedDriver) Input(ctx context.Context, cfg cli.InputConfig) (string, error) {
	return d.next(), nil
}

func (d *scriptedDriver) TextArea(ctx context.Context, cfg cli.TextAreaConfig) (string, error) {
	return d.next(), nil
}

func (d *scriptedDriver) Select(ctx context.Context, cfg cli.SelectConfig) (int, error) {
	return d.choice, nil
}

func useDriver(t *testing.T, d cli.PromptDriver) {
	t.Helper()
	prev := newPromptDriver
	newPromptDriver = func() cli.PromptDriver { return d }
	t.Cleanup(func() { newPromptDriver = prev })
}

func TestInitAndVersion(t *testing.T) {
	tempDir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tempDir))
	defer os.Chdir(oldDir)

	out, _, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .ldbpro folder structure")
	assert.True(t, files.ProjectExists())

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "LDBPRO version test\n", out)
}

func TestCommands_RequireProject(t *testing.T) {
	tempDir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tempDir))
	defer os.Chdir(oldDir)

	for _, args := range [][]string{{"show"}, {"add", "button", "--set", "text=x"}, {"export"}, {"theme"}} {
		_, _, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "ldbpro init")
	}
}

func TestRoot_RejectsUnknownOutputFormat(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "show", "-o", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestAdd_WithAssignments(t *testing.T) {
	setupProject(t)

	out, errOut, err := execute(t, "add", "button", "--set", "text=Sign up", "--set", "url=/signup")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Button at position 1")
	assert.Empty(t, errOut)

	result := showJSON(t)
	require.Len(t, result.Components, 1)
	c := result.Components[0]
	assert.Equal(t, "button", string(c.Type))
	assert.Equal(t, "Sign up", c.Data.Value("text"))
	assert.Equal(t, "/signup", c.Data.Value("url"))
	assert.Equal(t, []string{"text", "url"}, c.Data.Keys())
	assert.Empty(t, c.Missing)
}

func TestAdd_WarnsAboutEmptyRequiredFields(t *testing.T) {
	setupProject(t)

	_, errOut, err := execute(t, "add", "button", "--set", "url=/x")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Required fields are empty: text")

	result := showJSON(t)
	require.Len(t, result.Components, 1)
	assert.Equal(t, []string{"text"}, result.Components[0].Missing)
}

func TestAdd_Errors(t *testing.T) {
	setupProject(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown type", []string{"add", "carousel", "--set", "a=b"}, "carousel"},
		{"unknown field", []string{"add", "button", "--set", "colour=red"}, `unknown field "colour"`},
		{"bad assignment", []string{"add", "button", "--set", "text"}, "expected field=value"},
		{"set without type", []string{"add", "--set", "text=x"}, "component type is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.Zero(t, showJSON(t).Count, "failed adds must not change the page")
}

func TestAdd_Interactive(t *testing.T) {
	setupProject(t)
	// Gallery order puts video fourth
	useDriver(t, &scriptedDriver{answers: []string{"https://v.example", "<iframe></iframe>"}, choice: 3})

	_, _, err := execute(t, "add")
	require.NoError(t, err)

	result := showJSON(t)
	require.Len(t, result.Components, 1)
	c := result.Components[0]
	assert.Equal(t, "video", string(c.Type))
	assert.Equal(t, "https://v.example", c.Data.Value("videoUrl"))
	assert.Equal(t, "<iframe></iframe>", c.Data.Value("embedCode"))
}

func TestMoveDeleteRename(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "add", "richText", "--set", "content=Hello")
	require.NoError(t, err)
	_, _, err = execute(t, "add", "video", "--set", "videoUrl=v")
	require.NoError(t, err)

	out, _, err := execute(t, "move", "2", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Component moved successfully!")
	assert.Equal(t, []string{"video", "richText"}, types(showJSON(t)))

	out, _, err = execute(t, "move", "1", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "already at the top")

	_, _, err = execute(t, "move", "3", "up")
	assert.ErrorContains(t, err, "out of range")

	_, _, err = execute(t, "move", "1", "sideways")
	assert.ErrorContains(t, err, "invalid direction")

	// Empty stdin declines the confirmation
	_, _, err = execute(t, "delete", "1")
	assert.Error(t, err)
	assert.Len(t, showJSON(t).Components, 2)

	out, _, err = execute(t, "delete", "1", "-y")
	require.NoError(t, err)
	assert.Contains(t, out, "Component deleted: Video")
	assert.Equal(t, []string{"richText"}, types(showJSON(t)))

	_, _, err = execute(t, "rename", "Landing", "Page")
	require.NoError(t, err)
	assert.Equal(t, "Landing Page", showJSON(t).PageName)

	_, _, err = execute(t, "rename", "  ")
	assert.ErrorContains(t, err, "name for your page")
}

func TestShow_TextAndFilter(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "add", "imageBanner", "--set", "imageUrl=a.png", "--set", "title=Hi")
	require.NoError(t, err)
	_, _, err = execute(t, "add", "genericBanner", "--set", "title=Yo")
	require.NoError(t, err)
	_, _, err = execute(t, "add", "button", "--set", "text=Go", "--set", "url=/")
	require.NoError(t, err)

	out, errOut, err := execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Page: My new page")
	assert.Contains(t, out, "a.png | Hi")
	assert.Contains(t, out, "2!")
	assert.Contains(t, out, "Total: 3 component(s)")
	assert.Contains(t, errOut, "Component 2 is missing imageUrl, text")

	result := func(args ...string) ShowResult {
		out, _, err := execute(t, append([]string{"show", "-o", "json"}, args...)...)
		require.NoError(t, err)
		var r ShowResult
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		return r
	}

	banners := result("--filter", "*Banner")
	assert.Equal(t, []string{"imageBanner", "genericBanner"}, types(banners))
	assert.Equal(t, 2, banners.Components[1].Position)

	assert.Zero(t, result("--filter", "video").Count)

	_, _, err = execute(t, "show", "--filter", "[")
	assert.ErrorContains(t, err, "invalid filter")
}

func TestShow_EmptyPage(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No components added.")

	out, _, err = execute(t, "show", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "pageName: My new page")
	assert.Contains(t, out, "count: 0")
}

func TestExport_WritesFiles(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "rename", "Landing Page")
	require.NoError(t, err)
	_, _, err = execute(t, "add", "button", "--set", "text=<Go>", "--set", "url=/")
	require.NoError(t, err)

	out, _, err := execute(t, "export", "--dir", "out", "--format", "json,xml,html")
	require.NoError(t, err)
	assert.Contains(t, out, "JSON + XML + HTML export successful!")

	for _, name := range []string{"Landing_Page_data.json", "Landing_Page_data.xml", "Landing_Page_data.html"} {
		assert.FileExists(t, filepath.Join("out", name))
	}

	raw, err := os.ReadFile(filepath.Join("out", "Landing_Page_data.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<text>&lt;Go&gt;</text>")
}

func TestExport_DefaultsFromSettings(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "export")
	require.NoError(t, err)
	assert.FileExists(t, "My_new_page_data.json")
	assert.FileExists(t, "My_new_page_data.xml")
	assert.NoFileExists(t, "My_new_page_data.html")
}

func TestExport_StdoutAndCopy(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "add", "richText", "--set", "content=It's")
	require.NoError(t, err)

	out, _, err := execute(t, "export", "--stdout", "--format", "xml")
	require.NoError(t, err)
	assert.Contains(t, out, "<content>It&#039;s</content>")
	assert.NoFileExists(t, "My_new_page_data.xml")

	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = prev }()

	out, _, err = execute(t, "export", "--copy", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "JSON copied to clipboard")
	assert.Contains(t, copied, `"content": "It's"`)

	_, _, err = execute(t, "export", "--stdout", "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestExport_IncompleteNeedsConfirmation(t *testing.T) {
	setupProject(t)

	_, _, err := execute(t, "add", "video", "--set", "embedCode=x")
	require.NoError(t, err)

	_, _, err = execute(t, "export", "--dir", "out")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join("out", "My_new_page_data.json"))

	_, errOut, err := execute(t, "export", "--dir", "out", "-y")
	require.NoError(t, err)
	assert.Contains(t, errOut, "empty required fields")
	assert.FileExists(t, filepath.Join("out", "My_new_page_data.json"))
}

func TestTheme(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, _, err = execute(t, "theme", "LIGHT")
	require.NoError(t, err)

	out, _, err = execute(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, _, err = execute(t, "theme", "blue")
	assert.ErrorContains(t, err, "invalid theme")
}
