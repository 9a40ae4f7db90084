// Package report 提供 kc 的输出能力。
// 当前实现支持终端条形图、HTML、Markdown 表格、JSON 和仅总行数五种格式。
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kc/internal/model"
)

// Kind 表示输出格式，实现了 pflag.Value 以便直接绑定到命令行参数。
type Kind string

const (
	Terminal Kind = "terminal"
	HTML     Kind = "html"
	Markdown Kind = "markdown"
	JSON     Kind = "json"
	Total    Kind = "total"
)

// Kinds 返回全部支持的输出格式。
func Kinds() []Kind {
	return []Kind{Terminal, HTML, Markdown, JSON, Total}
}

// ParseKind 解析输出格式，不区分大小写；"md" 与 "table" 视为 markdown。
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "terminal", "":
		return Terminal, nil
	case "html":
		return HTML, nil
	case "markdown", "md", "table":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "total", "lines":
		return Total, nil
	default:
		return "", fmt.Errorf("unsupported reporter %q, allowed values: %s", value, kindsHelp())
	}
}

func kindsHelp() string {
	names := make([]string, 0, len(Kinds()))
	for _, kind := range Kinds() {
		names = append(names, string(kind))
	}
	return strings.Join(names, ", ")
}

// String 实现 pflag.Value。
func (k *Kind) String() string {
	return string(*k)
}

// Set 实现 pflag.Value。
func (k *Kind) Set(value string) error {
	parsed, err := ParseKind(value)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Type 实现 pflag.Value。
func (k *Kind) Type() string {
	return "reporter"
}

// Options 控制输出细节。
type Options struct {
	// Root 是扫描根目录，用于标题和提示信息。
	Root string
	// Width 是终端宽度，<= 0 时使用 80。
	Width int
	// Detailed 为 true 时输出空行数。
	Detailed bool
	// Blame 为 true 时在终端输出中列出每个语言的文件。
	Blame bool
	// Warn 接收非致命提示，例如没有找到任何代码。可以为 nil。
	Warn func(message string)
}

func (o Options) warn(format string, args ...any) {
	if o.Warn != nil {
		o.Warn(fmt.Sprintf(format, args...))
	}
}

// Render 按指定格式输出筛选结果。
// 聚合模式下无论 kind 为何都只输出总行数。
func Render(writer io.Writer, kind Kind, selection model.Selection, options Options) error {
	if selection.AggregateOnly {
		return PrintTotal(writer, selection, options)
	}

	switch kind {
	case Terminal, "":
		return PrintTerminal(writer, selection, options)
	case HTML:
		return PrintHTML(writer, selection, options)
	case Markdown:
		return PrintMarkdown(writer, selection, options)
	case JSON:
		return PrintJSON(writer, selection, options)
	case Total:
		return PrintTotal(writer, selection, options)
	default:
		return fmt.Errorf("unsupported reporter %q", kind)
	}
}

// WriteFile 将报告导出到指定路径。
// 如果目录不存在会自动创建。
func WriteFile(path string, kind Kind, selection model.Selection, options Options) error {
	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	renderErr := Render(file, kind, selection, options)
	closeErr := file.Close()
	if renderErr != nil {
		return renderErr
	}
	if closeErr != nil {
		return fmt.Errorf("write output file: %w", closeErr)
	}
	return nil
}

// PrintTotal 只输出总行数；Detailed 时追加总空行数。
func PrintTotal(writer io.Writer, selection model.Selection, options Options) error {
	if options.Detailed {
		_, err := fmt.Fprintf(writer, "%d %d\n", selection.Total.Lines, selection.Total.BlankLines)
		return err
	}
	_, err := fmt.Fprintf(writer, "%d\n", selection.Total.Lines)
	return err
}
