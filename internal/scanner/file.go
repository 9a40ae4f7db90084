package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"kc/internal/languages"
	"kc/internal/model"
)

var (
	// ErrNoFileName 表示路径没有可用的文件名（例如 "/" 或 ".."）。
	ErrNoFileName = errors.New("file must have a file name")
	// ErrUnknownLanguage 表示文件名和后缀都无法识别。
	ErrUnknownLanguage = errors.New("unable to determine language")

	errInvalidText = errors.New("content is not valid UTF-8 text")
)

// ReadError 包装读取文件内容时的失败，不区分具体原因。
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ProcessFile 对单个文件完成分类与行数统计。
// 函数之间不共享可变状态，可以被任意多个 worker 并发调用。
func ProcessFile(path string) (model.FileRecord, error) {
	name := baseName(path)
	if name == "" {
		return model.FileRecord{}, ErrNoFileName
	}

	language, ok := languages.Classify(name, extension(name))
	if !ok {
		return model.FileRecord{}, fmt.Errorf("%w for %q", ErrUnknownLanguage, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return model.FileRecord{}, &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		return model.FileRecord{}, &ReadError{Path: path, Err: errInvalidText}
	}

	lines, blank, err := countLines(bytes.NewReader(content))
	if err != nil {
		return model.FileRecord{}, &ReadError{Path: path, Err: err}
	}

	return model.FileRecord{
		Path:       path,
		Language:   language,
		Lines:      lines,
		BlankLines: blank,
	}, nil
}

// baseName 返回路径最后一段；路径为空、以 .. 结尾或只有分隔符时返回空串。
func baseName(path string) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}

// extension 返回不含点号的后缀。以点号开头且没有其他点号的文件（如 .bashrc）没有后缀。
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	if len(ext) > 0 {
		return ext[1:]
	}
	return ""
}
