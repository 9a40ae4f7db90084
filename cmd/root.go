// Package cmd 提供 kc 的命令行入口与子命令编排。
package cmd

import (
	"io"
	"log/slog"

	"kc/internal/config"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	return newRootCmd(version, func() (config.Config, error) {
		return config.Load(".")
	}).Execute()
}

// configLoader 在扫描开始前读取配置，version、language 等子命令不会触发它。
type configLoader func() (config.Config, error)

// newRootCmd 创建根命令并注册全部子命令。
// 根命令本身就是扫描命令：kc [dir]。
func newRootCmd(version string, load configLoader) *cobra.Command {
	options := newScanOptions()

	rootCmd := &cobra.Command{
		Use:   "kc [dir]",
		Short: "按语言统计目录中的代码行数",
		Long: "kc 递归遍历目录（默认遵守 .gitignore 并跳过隐藏文件），\n" +
			"按文件名和后缀识别语言，统计每种语言的行数与空行数并按行数排序输出。",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			options.applyConfig(cmd, cfg)
			return runScan(cmd, args, options)
		},
	}

	bindScanFlags(rootCmd, options)

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd())

	return rootCmd
}

// newLogger 创建写入 stderr 的文本日志，verbose 时打开 debug 级别。
func newLogger(writer io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
}
