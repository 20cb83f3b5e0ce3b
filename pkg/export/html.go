package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// embedPolicy allows the markup video providers hand out as embed codes and
// strips everything else (scripts, handlers, styles)
var embedPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("iframe")
	p.AllowAttrs("src", "width", "height", "title", "frameborder", "allow", "allowfullscreen").OnElements("iframe")
	return p
}()

// SanitizeEmbed strips anything unsafe from user-supplied embed markup
func SanitizeEmbed(markup string) string {
	return embedPolicy.Sanitize(markup)
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.PageName}}</title>
</head>
<body>
<main>
{{- range .Components}}
<section class="component component--{{.Type}}">
{{- template "component" .}}
</section>
{{- end}}
</main>
</body>
</html>
`

const componentTemplate = `{{define "component"}}
{{- $d := .Data -}}
{{- if eq (print .Type) "richText"}}
<p>{{$d.Value "content"}}</p>
{{- else if or (eq (print .Type) "imageBanner") (eq (print .Type) "genericBanner")}}
{{- with $d.Value "imageUrl"}}
<img src="{{.}}" alt="{{$d.Value "title"}}">
{{- end}}
<h2>{{$d.Value "title"}}</h2>
{{- with $d.Value "text"}}
<p>{{.}}</p>
{{- end}}
{{- else if eq (print .Type) "video"}}
{{- with embed ($d.Value "embedCode")}}
<div class="embed">{{.}}</div>
{{- else}}
{{- with $d.Value "videoUrl"}}
<video src="{{.}}" controls></video>
{{- end}}
{{- end}}
{{- else if eq (print .Type) "button"}}
<a class="button" href="{{$d.Value "url"}}">{{$d.Value "text"}}</a>
{{- end}}
{{end}}`

var htmlTemplate = template.Must(template.New("page").
	Funcs(template.FuncMap{
		"embed": func(markup string) template.HTML {
			// Sanitized by bluemonday before being trusted as HTML
			return template.HTML(SanitizeEmbed(markup))
		},
	}).
	Parse(pageTemplate + componentTemplate))

// ToHTML renders a standalone preview page. Text is escaped by
// html/template; embed codes go through the sanitizing policy.
func ToHTML(page models.PageDataModel) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("failed to render HTML preview: %w", err)
	}
	return buf.String(), nil
}
