package scanner

import (
	"github.com/boyter/gocodewalker"
)

// WalkPolicy 描述遍历时对隐藏文件和忽略规则的处理方式。
type WalkPolicy struct {
	IncludeHidden  bool
	IncludeIgnored bool
}

// Walker 负责遍历目录树，对每个候选文件路径调用 visit。
// visit 在单个 goroutine 中被顺序调用，可以阻塞。
type Walker interface {
	Walk(root string, policy WalkPolicy, visit func(path string)) error
}

// CodeWalker 基于 gocodewalker 实现 Walker，遵守 .gitignore、.ignore 以及隐藏文件规则。
type CodeWalker struct {
	// QueueSize 是内部文件队列的缓冲长度，0 表示使用默认值。
	QueueSize int
}

// Walk 遍历 root。单个目录的读取失败会被跳过，不会中断遍历。
func (w CodeWalker) Walk(root string, policy WalkPolicy, visit func(path string)) error {
	size := w.QueueSize
	if size <= 0 {
		size = 128
	}

	queue := make(chan *gocodewalker.File, size)
	fileWalker := gocodewalker.NewFileWalker(root, queue)
	fileWalker.IncludeHidden = policy.IncludeHidden
	fileWalker.IgnoreGitIgnore = policy.IncludeIgnored
	fileWalker.IgnoreIgnoreFile = policy.IncludeIgnored
	// 子模块中的代码属于仓库内容，不因 .gitmodules 被跳过。
	fileWalker.IgnoreGitModules = true
	fileWalker.SetErrorHandler(func(error) bool {
		return true
	})

	// Start 结束时会关闭 queue。
	startErr := make(chan error, 1)
	go func() {
		startErr <- fileWalker.Start()
	}()

	for file := range queue {
		visit(file.Location)
	}

	return <-startErr
}
