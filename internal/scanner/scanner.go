// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、任务分发、并发执行和结果聚合，不负责结果排序与输出。
package scanner

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"kc/internal/languages"
	"kc/internal/model"

	"golang.org/x/sync/errgroup"
)

// ErrNotADirectory 表示扫描根路径不是可遍历的目录。
var ErrNotADirectory = errors.New("not a directory")

// NotADirectoryError 是唯一会中断扫描的错误，在遍历开始之前返回。
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// Is 让 errors.Is(err, ErrNotADirectory) 成立。
func (e *NotADirectoryError) Is(target error) bool {
	return target == ErrNotADirectory
}

// SkipHandler 在某个文件被跳过时调用，只在聚合 goroutine 中执行。
type SkipHandler func(path string, err error)

// Service 是扫描服务对象。
type Service struct {
	walker  Walker
	workers int
	onSkip  SkipHandler
}

// workerResult 表示 worker 的执行产物，record 与 err 二者有且只有一个有效。
type workerResult struct {
	path   string
	record model.FileRecord
	err    error
}

// NewService 创建扫描服务。walker 为 nil 时使用 CodeWalker。
func NewService(walker Walker, workers int) *Service {
	if walker == nil {
		walker = CodeWalker{}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		walker:  walker,
		workers: workers,
	}
}

// SetSkipHandler 注册跳过文件时的回调，传 nil 表示不关心。
func (s *Service) SetSkipHandler(handler SkipHandler) {
	s.onSkip = handler
}

// Scan 扫描 options.RootDir 并按语言聚合。
//
// 单文件的分类失败或读取失败只会让该文件被跳过；只有根路径不是目录时才返回错误。
// 返回的 map 在函数返回后不再被修改。
func (s *Service) Scan(options model.ScanOptions) (map[languages.Language]*model.Summary, error) {
	root := strings.TrimSpace(options.RootDir)
	if root == "" {
		root = "."
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &NotADirectoryError{Path: root}
	}

	paths := make(chan string, s.workers*4)
	results := make(chan workerResult, s.workers*4)

	var walkGroup errgroup.Group
	walkGroup.Go(func() error {
		defer close(paths)
		return s.enqueuePaths(root, options, paths)
	})

	var workerGroup errgroup.Group
	for i := 0; i < s.workers; i++ {
		workerGroup.Go(func() error {
			s.runWorker(paths, results)
			return nil
		})
	}

	go func() {
		_ = workerGroup.Wait()
		close(results)
	}()

	// 聚合只在当前 goroutine 中进行，map 只有这一个写入方。
	summaries := make(map[languages.Language]*model.Summary)
	for item := range results {
		if item.err != nil {
			if s.onSkip != nil {
				s.onSkip(item.path, item.err)
			}
			continue
		}

		summary, ok := summaries[item.record.Language]
		if !ok {
			summary = model.NewSummary(item.record.Language)
			summaries[item.record.Language] = summary
		}
		summary.Add(item.record)
	}

	if walkErr := walkGroup.Wait(); walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	return summaries, nil
}

// enqueuePaths 遍历目录，把普通文件推入任务队列。
// 未开启 IncludeIgnored 时额外应用噪声排除规则。
func (s *Service) enqueuePaths(root string, options model.ScanOptions, paths chan<- string) error {
	policy := WalkPolicy{
		IncludeHidden:  options.IncludeHidden,
		IncludeIgnored: options.IncludeIgnored,
	}

	return s.walker.Walk(root, policy, func(path string) {
		if !options.IncludeIgnored && isNoise(root, path) {
			return
		}
		if !isRegularFile(path) {
			return
		}
		paths <- path
	})
}

// runWorker 执行真实的文件读取和行数统计。
func (s *Service) runWorker(paths <-chan string, results chan<- workerResult) {
	for path := range paths {
		record, err := ProcessFile(path)
		results <- workerResult{
			path:   path,
			record: record,
			err:    err,
		}
	}
}

// isRegularFile 跟随符号链接判断是否为普通文件。
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
