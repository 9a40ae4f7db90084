package summary

import (
	"testing"

	"kc/internal/languages"
	"kc/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedSummaries 对应 6/5/4/2 行的混合目录。
func mixedSummaries() map[languages.Language]*model.Summary {
	return map[languages.Language]*model.Summary{
		languages.Rust:       {Language: languages.Rust, Lines: 6, BlankLines: 1, Files: []string{"main.rs"}},
		languages.Gleam:      {Language: languages.Gleam, Lines: 5, BlankLines: 1, Files: []string{"src/app.gleam"}},
		languages.Make:       {Language: languages.Make, Lines: 4, Files: []string{"Makefile"}},
		languages.TypeScript: {Language: languages.TypeScript, Lines: 2, Files: []string{"web/index.ts"}},
	}
}

func intPtr(v int) *int {
	return &v
}

func lineCounts(items []model.Summary) []int64 {
	result := make([]int64, 0, len(items))
	for _, item := range items {
		result = append(result, item.Lines)
	}
	return result
}

func TestSelect_SortsByLinesDescending(t *testing.T) {
	selection := Select(mixedSummaries(), model.ScanOptions{})

	require.Len(t, selection.Summaries, 4)
	assert.Equal(t, []int64{6, 5, 4, 2}, lineCounts(selection.Summaries))
	assert.Equal(t, languages.Rust, selection.Summaries[0].Language)
	assert.Equal(t, languages.TypeScript, selection.Summaries[3].Language)
	assert.Equal(t, int64(17), selection.Total.Lines)
	assert.Equal(t, int64(2), selection.Total.BlankLines)
	assert.False(t, selection.AggregateOnly)
}

func TestSelect_AggregateOnly(t *testing.T) {
	selection := Select(mixedSummaries(), model.ScanOptions{AggregateOnly: true})

	assert.True(t, selection.AggregateOnly)
	assert.Empty(t, selection.Summaries)
	assert.Equal(t, int64(17), selection.Total.Lines)
}

func TestSelect_HeadLimiting(t *testing.T) {
	selection := Select(mixedSummaries(), model.ScanOptions{Head: intPtr(2)})
	require.Len(t, selection.Summaries, 2)
	assert.Equal(t, []int64{6, 5}, lineCounts(selection.Summaries))

	aggregate := Select(mixedSummaries(), model.ScanOptions{Head: intPtr(2), AggregateOnly: true})
	assert.Equal(t, int64(11), aggregate.Total.Lines)

	larger := Select(mixedSummaries(), model.ScanOptions{Head: intPtr(10)})
	assert.Len(t, larger.Summaries, 4)

	zero := Select(mixedSummaries(), model.ScanOptions{Head: intPtr(0)})
	assert.Empty(t, zero.Summaries)
	assert.Equal(t, int64(0), zero.Total.Lines)
}

func TestSelect_ExclusionNarrowsAggregate(t *testing.T) {
	selection := Select(mixedSummaries(), model.ScanOptions{
		Excluded:      model.NewLanguageSet(languages.Rust, languages.Gleam),
		AggregateOnly: true,
	})

	assert.Equal(t, int64(6), selection.Total.Lines)
}

func TestSelect_HeadAppliesAfterExclusion(t *testing.T) {
	selection := Select(mixedSummaries(), model.ScanOptions{
		Excluded: model.NewLanguageSet(languages.Rust),
		Head:     intPtr(2),
	})

	require.Len(t, selection.Summaries, 2)
	assert.Equal(t, languages.Gleam, selection.Summaries[0].Language)
	assert.Equal(t, languages.Make, selection.Summaries[1].Language)
}

func TestSelect_OnlyInclude(t *testing.T) {
	selection := Select(mixedSummaries(), model.ScanOptions{
		OnlyInclude: model.NewLanguageSet(languages.Rust, languages.Go),
	})

	require.Len(t, selection.Summaries, 1)
	assert.Equal(t, languages.Rust, selection.Summaries[0].Language)
}

func TestSelect_ExclusionAndInclusionCompose(t *testing.T) {
	options := model.ScanOptions{
		Excluded:    model.NewLanguageSet(languages.Rust),
		OnlyInclude: model.NewLanguageSet(languages.Rust, languages.Gleam),
	}
	selection := Select(mixedSummaries(), options)

	require.Len(t, selection.Summaries, 1)
	assert.Equal(t, languages.Gleam, selection.Summaries[0].Language)
	assert.Equal(t, []string{WarnBothFilters}, Warnings(options))
	assert.Empty(t, Warnings(model.ScanOptions{Excluded: options.Excluded}))
}

func TestSelect_TieBreakIsDeterministic(t *testing.T) {
	summaries := map[languages.Language]*model.Summary{
		languages.Zig:    {Language: languages.Zig, Lines: 3},
		languages.Lua:    nil,
		languages.Bash:   {Language: languages.Bash, Lines: 3},
		languages.Python: {Language: languages.Python, Lines: 3},
		languages.Go:     {Language: languages.Go, Lines: 7},
	}

	for i := 0; i < 20; i++ {
		selection := Select(summaries, model.ScanOptions{})
		require.Len(t, selection.Summaries, 4)
		assert.Equal(t, languages.Go, selection.Summaries[0].Language)
		assert.Equal(t, languages.Bash, selection.Summaries[1].Language)
		assert.Equal(t, languages.Python, selection.Summaries[2].Language)
		assert.Equal(t, languages.Zig, selection.Summaries[3].Language)
	}

	capped := Select(summaries, model.ScanOptions{Head: intPtr(2)})
	assert.Equal(t, []languages.Language{languages.Go, languages.Bash},
		[]languages.Language{capped.Summaries[0].Language, capped.Summaries[1].Language})
}

func TestSelect_Empty(t *testing.T) {
	selection := Select(nil, model.ScanOptions{Head: intPtr(3)})
	assert.Empty(t, selection.Summaries)
	assert.Equal(t, model.Totals{}, selection.Total)

	aggregate := Select(map[languages.Language]*model.Summary{}, model.ScanOptions{AggregateOnly: true})
	assert.Equal(t, int64(0), aggregate.Total.Lines)
}
