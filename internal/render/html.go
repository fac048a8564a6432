package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// CSS classes of the status message paragraphs.
const (
	ClassLoading = "loading-text"
	ClassWarning = "warn-text"
)

const fragments = `
{{define "cell"}}{{if eq .Highlight "max"}}<td style="color: blue;">{{.Value}}</td>{{else if eq .Highlight "min"}}<td style="color: red;">{{.Value}}</td>{{else}}<td>{{.Value}}</td>{{end}}{{end}}
{{define "table"}}<p class="caption">Showing Readings for Dock: <strong>{{.Identifier}}</strong></p>
<table border="1">
  <thead>
    <tr>
      <th>Virtual Cell</th>
      <th>Bottom Brick (mV)</th>
      <th>Top Brick (mV)</th>
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
      <td>{{.Label}}</td>
      {{template "cell" .Bottom}}
      {{template "cell" .Top}}
    </tr>
{{- end}}
  </tbody>
  <tfoot>
{{- range .Footer}}
    <tr><td>{{.Label}}</td>{{if eq .Highlight "max"}}<td style="color: blue;">{{.Bottom}}</td><td style="color: blue;">{{.Top}}</td>{{else if eq .Highlight "min"}}<td style="color: red;">{{.Bottom}}</td><td style="color: red;">{{.Top}}</td>{{else}}<td>{{.Bottom}}</td><td>{{.Top}}</td>{{end}}</tr>
{{- end}}
  </tfoot>
</table>
{{end}}
{{define "message"}}<p class="{{.Class}}">{{.Text}}</p>{{end}}
`

var tmpl = template.Must(template.New("fragments").Parse(fragments))

// TableHTML renders t as an HTML fragment.
func TableHTML(t *Table) (template.HTML, error) {
	if t == nil {
		return "", fmt.Errorf("render: nil table")
	}
	return execute("table", t)
}

// MessageHTML renders a single status paragraph with the given class.
func MessageHTML(class, text string) (template.HTML, error) {
	return execute("message", struct{ Class, Text string }{class, text})
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render: execute %s: %w", name, err)
	}
	// Output is produced by html/template and already escaped.
	return template.HTML(buf.String()), nil
}
