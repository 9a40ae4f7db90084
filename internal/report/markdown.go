package report

import (
	"fmt"
	"io"
	"strconv"

	"kc/internal/model"

	"github.com/olekukonko/tablewriter"
)

// PrintMarkdown 以 Markdown 表格输出语言与行数。
func PrintMarkdown(writer io.Writer, selection model.Selection, options Options) error {
	if len(selection.Summaries) == 0 {
		_, err := fmt.Fprintf(writer, "no code found in %s\n", options.Root)
		return err
	}

	header := []string{"Language", "Lines"}
	alignment := []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT}
	if options.Detailed {
		header = append(header, "Blank")
		alignment = append(alignment, tablewriter.ALIGN_RIGHT)
	}

	table := NewMarkdownTable(writer, header)
	table.SetColumnAlignment(alignment)

	for _, item := range selection.Summaries {
		row := []string{item.Language.String(), strconv.FormatInt(item.Lines, 10)}
		if options.Detailed {
			row = append(row, strconv.FormatInt(item.BlankLines, 10))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// NewMarkdownTable 创建 GitHub 风格的 Markdown 表格写入器。
func NewMarkdownTable(writer io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}
