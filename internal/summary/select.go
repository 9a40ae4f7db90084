// Package summary 把扫描得到的语言汇总整理成最终交给输出层的有序结果。
package summary

import (
	"sort"

	"kc/internal/languages"
	"kc/internal/model"
)

// WarnBothFilters 是同时设置包含与排除集合时的提示文案。
const WarnBothFilters = "both --only and --exclude have been set, which doesn't really make sense"

// Select 依次执行：排序、排除、包含、截断、合计。
//
// 排序规则：行数降序；行数相同时按展示名称升序，再按语言枚举值升序，
// 保证结果与并发聚合的到达顺序无关。
// 合计在全部筛选之后计算，因此与 head/exclude 同时生效时结果一致。
func Select(summaries map[languages.Language]*model.Summary, options model.ScanOptions) model.Selection {
	ordered := make([]model.Summary, 0, len(summaries))
	for _, item := range summaries {
		if item == nil {
			continue
		}
		ordered = append(ordered, *item)
	}
	Sort(ordered)

	selected := make([]model.Summary, 0, len(ordered))
	for _, item := range ordered {
		if len(options.Excluded) > 0 && options.Excluded.Contains(item.Language) {
			continue
		}
		if len(options.OnlyInclude) > 0 && !options.OnlyInclude.Contains(item.Language) {
			continue
		}
		selected = append(selected, item)
	}

	if options.Head != nil {
		limit := *options.Head
		if limit < 0 {
			limit = 0
		}
		if limit < len(selected) {
			selected = selected[:limit]
		}
	}

	selection := model.Selection{
		Summaries:     selected,
		Total:         Aggregate(selected),
		AggregateOnly: options.AggregateOnly,
	}
	if options.AggregateOnly {
		selection.Summaries = nil
	}
	return selection
}

// Sort 按行数降序排列，平局时按名称和枚举值升序。
func Sort(items []model.Summary) {
	sort.SliceStable(items, func(i int, j int) bool {
		if items[i].Lines != items[j].Lines {
			return items[i].Lines > items[j].Lines
		}
		left, right := items[i].Language.String(), items[j].Language.String()
		if left != right {
			return left < right
		}
		return items[i].Language < items[j].Language
	})
}

// Aggregate 计算一组汇总的行数合计，空列表返回零值。
func Aggregate(items []model.Summary) model.Totals {
	var total model.Totals
	for _, item := range items {
		total.Add(item)
	}
	return total
}

// Warnings 返回配置层面的提示，这些情况不会中断处理。
func Warnings(options model.ScanOptions) []string {
	var warnings []string
	if len(options.OnlyInclude) > 0 && len(options.Excluded) > 0 {
		warnings = append(warnings, WarnBothFilters)
	}
	return warnings
}
