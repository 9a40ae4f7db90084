// Package model 定义 kc 的核心数据模型。
// 这些结构会被扫描器、筛选层、输出层和命令层共同使用。
package model

import "kc/internal/languages"

// FileRecord 表示单个已分类文件的统计结果，创建后不再修改。
//
// 注意：
// - Lines 表示总行数，末尾没有换行符的最后一行同样计数
// - BlankLines 仅统计长度为 0 的行（不做空白字符裁剪），恒有 BlankLines <= Lines
type FileRecord struct {
	Path       string
	Language   languages.Language
	Lines      int64
	BlankLines int64
}

// Summary 表示某个语言在一次扫描中的聚合结果。
// 仅由聚合阶段修改，交给筛选层之后只读。
type Summary struct {
	Language   languages.Language
	Lines      int64
	BlankLines int64
	// Files 按聚合顺序记录文件路径，不保证有序。
	Files []string
}

// NewSummary 创建某语言的零值汇总。
func NewSummary(language languages.Language) *Summary {
	return &Summary{Language: language}
}

// Add 将一个文件结果并入汇总。调用方需保证 record.Language 与汇总语言一致。
func (s *Summary) Add(record FileRecord) {
	s.Lines += record.Lines
	s.BlankLines += record.BlankLines
	s.Files = append(s.Files, record.Path)
}

// Totals 是一组汇总的行数合计。
type Totals struct {
	Lines      int64 `json:"lines"`
	BlankLines int64 `json:"blank_lines"`
}

// Add 将一个语言汇总累加到合计中。
func (t *Totals) Add(summary Summary) {
	t.Lines += summary.Lines
	t.BlankLines += summary.BlankLines
}

// Selection 是筛选层交给输出层的最终结果。
// AggregateOnly 为 true 时 Summaries 为空，只有 Total 有意义。
type Selection struct {
	Summaries     []Summary
	Total         Totals
	AggregateOnly bool
}
