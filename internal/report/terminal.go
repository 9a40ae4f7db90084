package report

import (
	"fmt"
	"io"
	"strings"

	"kc/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 80
	minimumWidth = 20
	dotGlyph     = "●"
)

// PrintTerminal 每个语言输出一行 "● 名称 ....... 行数"，随后输出按行数比例着色的条形图。
// 没有任何结果时只给出提示，不视为错误。
func PrintTerminal(writer io.Writer, selection model.Selection, options Options) error {
	if len(selection.Summaries) == 0 {
		options.warn("no code found in %q", options.Root)
		return nil
	}

	renderer := lipgloss.NewRenderer(writer)
	innerWidth := terminalWidth(options.Width) - 2

	var builder strings.Builder
	builder.WriteString("\n")
	for _, item := range selection.Summaries {
		builder.WriteString(" ")
		builder.WriteString(summaryLine(renderer, item, innerWidth, options.Detailed))
		if options.Blame {
			for i, path := range item.Files {
				glyph := "├"
				if i == len(item.Files)-1 {
					glyph = "└"
				}
				fmt.Fprintf(&builder, "\n %s %s", glyph, path)
			}
		}
		builder.WriteString("\n")
	}

	builder.WriteString(bar(renderer, selection, innerWidth))

	_, err := io.WriteString(writer, builder.String())
	return err
}

func terminalWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	if width < minimumWidth {
		return minimumWidth
	}
	return width
}

// summaryLine 生成单行，总宽度为 width（名称过长时至少保留一个点）。
func summaryLine(renderer *lipgloss.Renderer, item model.Summary, width int, detailed bool) string {
	info := item.Language.Info()

	dot := dotGlyph
	if info.Color != nil {
		dot = renderer.NewStyle().Foreground(lipgloss.Color(info.Color.Hex())).Render(dotGlyph)
	}

	right := fmt.Sprintf("%d", item.Lines)
	if detailed {
		right = fmt.Sprintf("%d - %d", item.Lines, item.BlankLines)
	}

	// 圆点 + 两个空格 + 名称 + 空格，右侧为空格 + 数字。
	leftWidth := lipgloss.Width(info.Name) + 4
	fill := width - leftWidth - (len(right) + 1)
	if fill < 1 {
		fill = 1
	}
	inlay := renderer.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat(".", fill))

	return fmt.Sprintf("%s  %s %s %s", dot, info.Name, inlay, right)
}

// bar 生成比例条形图。总行数为 0 或所有语言占比都不足一格时不输出。
func bar(renderer *lipgloss.Renderer, selection model.Selection, width int) string {
	total := selection.Total.Lines
	if total <= 0 {
		return ""
	}

	blank := renderer.NewStyle().Background(lipgloss.Color("7"))

	var builder strings.Builder
	filled := 0
	for _, item := range selection.Summaries {
		cells := int(item.Lines * int64(width) / total)
		if cells == 0 {
			continue
		}
		if filled == 0 {
			builder.WriteString("\n ")
		}
		filled += cells

		segment := strings.Repeat(" ", cells)
		if color := item.Language.Info().Color; color != nil {
			builder.WriteString(renderer.NewStyle().Background(lipgloss.Color(color.Hex())).Render(segment))
		} else {
			builder.WriteString(blank.Render(segment))
		}
	}

	if filled == 0 {
		return ""
	}
	if filled < width {
		builder.WriteString(blank.Render(strings.Repeat(" ", width-filled)))
	}
	builder.WriteString("\n\n")
	return builder.String()
}
