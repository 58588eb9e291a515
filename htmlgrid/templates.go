package htmlgrid

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}>\n" +
			"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		"{{if .IsHeaderRow}}" +
		"  <tr>{{range .Cells}}<th>{{.Raw}}</th>{{end}}</tr>\n" +
		"{{else}}" +
		"  <tr>{{range .Cells}}<td" +
		"{{if gt .RowSpan 1}} rowspan='{{.RowSpan}}'{{end}}" +
		"{{if gt .ColSpan 1}} colspan='{{.ColSpan}}'{{end}}" +
		">{{.Raw}}</td>{{end}}</tr>\n" +
		"{{end}}",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"</table>",
	))
)

type TemplateContext struct {
	TableClass string
	Caption    string
}

// CellTemplateContext is one table cell spanning
// RowSpan rows and ColSpan columns.
type CellTemplateContext struct {
	Raw     template.HTML
	RowSpan int
	ColSpan int
}

type RowTemplateContext struct {
	TemplateContext

	IsHeaderRow bool
	RowIndex    int
	Cells       []CellTemplateContext
}
