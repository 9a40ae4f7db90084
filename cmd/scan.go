package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"kc/internal/config"
	"kc/internal/languages"
	"kc/internal/model"
	"kc/internal/report"
	"kc/internal/scanner"
	"kc/internal/summary"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

// scanOptions 存放扫描命令的可配置参数，未显式指定的部分取自 config。
type scanOptions struct {
	hidden   bool
	all      bool
	exclude  []string
	only     []string
	head     int
	lines    bool
	reporter report.Kind
	detailed bool
	blame    bool
	width    int
	workers  int
	output   string
	verbose  bool
}

func newScanOptions() *scanOptions {
	return &scanOptions{reporter: report.Terminal}
}

// applyConfig 用配置填充未在命令行显式指定的参数。
func (o *scanOptions) applyConfig(cmd *cobra.Command, cfg config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("reporter") && cfg.Reporter != "" {
		o.reporter = cfg.Reporter
	}
	if !flags.Changed("detailed") {
		o.detailed = cfg.Detailed
	}
	if !flags.Changed("width") {
		o.width = cfg.Width
	}
	if !flags.Changed("workers") {
		o.workers = cfg.Workers
	}
}

// bindScanFlags 注册扫描相关参数。
// 示例：
//
//	kc .
//	kc ./project -aA -x json,toml -t 5
//	kc ./project -O html --output report.html
func bindScanFlags(cmd *cobra.Command, options *scanOptions) {
	flags := cmd.Flags()
	flags.BoolVarP(&options.hidden, "hidden", "a", false, "统计隐藏文件和目录")
	flags.BoolVarP(&options.all, "all", "A", false, "不遵守 .gitignore/.ignore，也不排除 node_modules 等噪声文件")
	flags.StringSliceVarP(&options.exclude, "exclude", "x", nil, "排除的语言，逗号分隔，可按名称或后缀指定")
	flags.StringSliceVarP(&options.only, "only", "o", nil, "只统计这些语言，逗号分隔，可按名称或后缀指定")
	flags.IntVarP(&options.head, "head", "t", 0, "只展示行数最多的前 N 种语言")
	flags.IntVar(&options.head, "top", 0, "--head 的别名")
	_ = flags.MarkHidden("top")
	flags.BoolVarP(&options.lines, "lines", "l", false, "只输出总行数")
	flags.VarP(&options.reporter, "reporter", "O", "输出格式: "+kindList())
	flags.BoolVarP(&options.detailed, "detailed", "d", false, "同时输出空行数")
	flags.BoolVar(&options.blame, "blame", false, "在终端输出中列出每种语言包含的文件")
	flags.IntVar(&options.width, "width", 0, "终端输出宽度，0 表示自动探测")
	flags.IntVar(&options.workers, "workers", 0, "并发 worker 数量，0 表示 CPU 核数")
	flags.StringVar(&options.output, "output", "", "把报告写入文件而不是标准输出")
	flags.BoolVar(&options.verbose, "verbose", false, "输出调试日志，包括被跳过的文件")
}

func kindList() string {
	names := make([]string, 0, len(report.Kinds()))
	for _, kind := range report.Kinds() {
		names = append(names, string(kind))
	}
	return strings.Join(names, "|")
}

func runScan(cmd *cobra.Command, args []string, options *scanOptions) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	logger := newLogger(cmd.ErrOrStderr(), options.verbose)

	scanConfig, err := options.build(cmd, root)
	if err != nil {
		return err
	}
	for _, warning := range summary.Warnings(scanConfig) {
		logger.Warn(warning)
	}
	logger.Debug("language filters",
		"exclude", languageNames(scanConfig.Excluded),
		"only", languageNames(scanConfig.OnlyInclude))

	service := scanner.NewService(nil, options.workers)
	if options.verbose {
		service.SetSkipHandler(func(path string, err error) {
			logger.Debug("skipped file", "path", path, "reason", err)
		})
	}

	summaries, err := service.Scan(scanConfig)
	if err != nil {
		return err
	}
	selection := summary.Select(summaries, scanConfig)
	logger.Debug("scan finished", "root", root, "languages", len(summaries), "lines", selection.Total.Lines)

	kind := options.reporter
	if options.lines {
		kind = report.Total
	}
	reportOptions := report.Options{
		Root:     root,
		Width:    options.width,
		Detailed: options.detailed,
		Blame:    options.blame,
		Warn:     func(message string) { logger.Warn(message) },
	}

	if output := strings.TrimSpace(options.output); output != "" {
		if err := report.WriteFile(output, kind, selection, reportOptions); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report exported to %s\n", output)
		return nil
	}

	if reportOptions.Width == 0 {
		reportOptions.Width = detectWidth()
	}
	return report.Render(cmd.OutOrStdout(), kind, selection, reportOptions)
}

// build 校验参数并转换为扫描配置。
func (o *scanOptions) build(cmd *cobra.Command, root string) (model.ScanOptions, error) {
	if o.width < 0 {
		return model.ScanOptions{}, errors.New("width must not be negative")
	}
	if o.workers < 0 {
		return model.ScanOptions{}, errors.New("workers must not be negative")
	}

	excluded, err := resolveLanguages(o.exclude)
	if err != nil {
		return model.ScanOptions{}, err
	}
	only, err := resolveLanguages(o.only)
	if err != nil {
		return model.ScanOptions{}, err
	}

	options := model.ScanOptions{
		RootDir:        root,
		IncludeHidden:  o.hidden,
		IncludeIgnored: o.all,
		Excluded:       excluded,
		OnlyInclude:    only,
		AggregateOnly:  o.lines,
		Detailed:       o.detailed,
		Blame:          o.blame,
	}

	if cmd.Flags().Changed("head") || cmd.Flags().Changed("top") {
		if o.head < 0 {
			return model.ScanOptions{}, errors.New("head must not be negative")
		}
		head := o.head
		options.Head = &head
	}
	return options, nil
}

// resolveLanguages 把用户输入的语言名称或后缀解析为语言集合。
// 同一参数中可以用逗号分隔多个值，空项会被忽略。
func resolveLanguages(identifiers []string) (model.LanguageSet, error) {
	set := model.NewLanguageSet()
	for _, identifier := range identifiers {
		identifier = strings.TrimSpace(identifier)
		if identifier == "" {
			continue
		}
		language, ok := languages.Resolve(identifier)
		if !ok {
			return nil, fmt.Errorf("unrecognized language identifier %q", identifier)
		}
		set[language] = struct{}{}
	}
	return set, nil
}

func languageNames(set model.LanguageSet) []string {
	names := make([]string, 0, len(set))
	for _, language := range set.Sorted() {
		names = append(names, language.String())
	}
	return names
}

// detectWidth 读取 stdout 的终端宽度，非终端时回退到 80。
func detectWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
