package report

import (
	"encoding/json"
	"fmt"
	"io"

	"kc/internal/model"
)

type jsonLanguage struct {
	Name       string   `json:"name"`
	Color      string   `json:"color,omitempty"`
	Lines      int64    `json:"lines"`
	BlankLines int64    `json:"blank_lines"`
	Files      []string `json:"files"`
}

type jsonReport struct {
	Root      string         `json:"root"`
	Languages []jsonLanguage `json:"languages"`
	Total     model.Totals   `json:"total"`
}

// PrintJSON 把筛选结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, selection model.Selection, options Options) error {
	result := jsonReport{
		Root:      options.Root,
		Languages: make([]jsonLanguage, 0, len(selection.Summaries)),
		Total:     selection.Total,
	}
	for _, item := range selection.Summaries {
		entry := jsonLanguage{
			Name:       item.Language.String(),
			Lines:      item.Lines,
			BlankLines: item.BlankLines,
			Files:      item.Files,
		}
		if color := item.Language.Info().Color; color != nil {
			entry.Color = color.Hex()
		}
		if entry.Files == nil {
			entry.Files = []string{}
		}
		result.Languages = append(result.Languages, entry)
	}

	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
