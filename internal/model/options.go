package model

import (
	"sort"

	"kc/internal/languages"
)

// LanguageSet 是语言集合，零值可直接读取。
type LanguageSet map[languages.Language]struct{}

// NewLanguageSet 用给定语言构造集合。
func NewLanguageSet(items ...languages.Language) LanguageSet {
	set := make(LanguageSet, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Contains 判断集合是否包含某语言。
func (s LanguageSet) Contains(language languages.Language) bool {
	_, ok := s[language]
	return ok
}

// Sorted 按展示名称返回集合元素，便于稳定输出。
func (s LanguageSet) Sorted() []languages.Language {
	result := make([]languages.Language, 0, len(s))
	for language := range s {
		result = append(result, language)
	}
	sort.Slice(result, func(i int, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

// ScanOptions 是一次扫描的不可变配置，由命令层构造。
type ScanOptions struct {
	RootDir string
	// IncludeHidden 为 true 时遍历隐藏文件和目录。
	IncludeHidden bool
	// IncludeIgnored 为 true 时不再遵守 .gitignore/.ignore，也关闭内置的噪声排除规则。
	IncludeIgnored bool
	Excluded       LanguageSet
	OnlyInclude    LanguageSet
	// Head 为 nil 表示不限制结果数量。
	Head          *int
	AggregateOnly bool
	// Detailed 控制输出层是否展示空行数。
	Detailed bool
	// Blame 控制输出层是否列出每个语言的文件。
	Blame bool
}
