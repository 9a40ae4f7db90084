package cmd

import (
	"strings"

	"kc/internal/languages"
	"kc/internal/report"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示全部可识别的语言，以及对应的文件后缀和固定文件名。
func newLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示可识别的语言、后缀及文件名",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := report.NewMarkdownTable(cmd.OutOrStdout(), []string{"Language", "Extensions", "File names"})

			for _, item := range languages.Languages() {
				table.Append([]string{
					item.Name,
					strings.Join(item.Extensions, ", "),
					strings.Join(item.FileNames, ", "),
				})
			}

			table.Render()
			return nil
		},
	}
}
