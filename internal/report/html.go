package report

import (
	"fmt"
	"html/template"
	"io"

	"kc/internal/model"
)

// barThreshold 以下占比的语言合并到 "Other languages" 色块中。
const barThreshold = 0.02

const htmlStyles = `body { font-family: system-ui, sans-serif; margin: 2rem; }
.bar { display: flex; height: 1.5rem; border-radius: 4px; overflow: hidden; margin-bottom: 1.5rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.25rem 0.5rem; border-bottom: 1px solid #ddd; }
td:nth-child(n+2), th:nth-child(n+2) { text-align: right; }
`

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<title>{{.Root}} — kc</title>
<style>
{{.Styles}}</style>
</head>
<body>

<div aria-hidden class="bar">
{{- range .Bar}}
	<div aria-hidden title="{{.Title}}" style="{{.Style}}"></div>
{{- end}}
</div>

<table>
<colgroup><col /><col width="15%" />{{if .Detailed}}<col width="15%" />{{end}}</colgroup>
	<tr><th>Language</th><th>Lines</th>{{if .Detailed}}<th>Blank</th>{{end}}</tr>
{{- range .Rows}}
	<tr><td><span style="{{.DotStyle}}">●</span>&nbsp;{{.Name}}</td><td>{{.Lines}}</td>{{if $.Detailed}}<td>{{.BlankLines}}</td>{{end}}</tr>
{{- end}}
</table>

</body>
</html>
`))

type htmlSegment struct {
	Title string
	Style template.CSS
}

type htmlRow struct {
	Name       string
	DotStyle   template.CSS
	Lines      int64
	BlankLines int64
}

type htmlPage struct {
	Root     string
	Styles   template.CSS
	Detailed bool
	Bar      []htmlSegment
	Rows     []htmlRow
}

// PrintHTML 输出完整的 HTML 页面：顶部比例色条，下方为语言表格。
func PrintHTML(writer io.Writer, selection model.Selection, options Options) error {
	page := htmlPage{
		Root:     options.Root,
		Styles:   template.CSS(htmlStyles),
		Detailed: options.Detailed,
	}

	total := selection.Total.Lines
	remaining := total
	for _, item := range selection.Summaries {
		if total <= 0 || float64(item.Lines)/float64(total) < barThreshold {
			break
		}
		remaining -= item.Lines
		page.Bar = append(page.Bar, htmlSegment{
			Title: item.Language.String(),
			Style: template.CSS(fmt.Sprintf("background-color: %s; flex-grow: %d", htmlColor(item), item.Lines)),
		})
	}
	if remaining > 0 {
		page.Bar = append(page.Bar, htmlSegment{
			Title: "Other languages",
			Style: template.CSS(fmt.Sprintf("background-color: gray; flex-grow: %d", remaining)),
		})
	}

	for _, item := range selection.Summaries {
		page.Rows = append(page.Rows, htmlRow{
			Name:       item.Language.String(),
			DotStyle:   template.CSS("color: " + htmlColor(item)),
			Lines:      item.Lines,
			BlankLines: item.BlankLines,
		})
	}

	if err := htmlTemplate.Execute(writer, page); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func htmlColor(item model.Summary) string {
	if color := item.Language.Info().Color; color != nil {
		return color.Hex()
	}
	return "gray"
}
