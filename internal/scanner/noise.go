package scanner

import (
	"path/filepath"
	"strings"
)

const (
	noiseLockFile  = "package-lock.json"
	noiseDependDir = "node_modules"
)

// isNoise 判断路径是否命中内置的噪声排除规则：依赖锁文件，或位于依赖安装目录之下。
// 目录分量只在 root 之下比较，root 本身位于 node_modules 中不会导致全部排除。
func isNoise(root string, path string) bool {
	if filepath.Base(path) == noiseLockFile {
		return true
	}

	relative, err := filepath.Rel(root, path)
	if err != nil {
		relative = path
	}

	for _, part := range strings.Split(filepath.ToSlash(relative), "/") {
		if part == noiseDependDir {
			return true
		}
	}
	return false
}
