// main.go 是 kc 的程序入口。
// 该文件仅负责注入版本号并执行 Cobra 根命令，
// 业务逻辑保留在 cmd 与 internal 目录中。
package main

import (
	"fmt"
	"os"

	"kc/cmd"
)

// version 默认值为 dev。
// 发布时可以通过 -ldflags "-X main.version=vX.Y.Z" 覆盖该值。
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "kc error: %v\n", err)
		os.Exit(1)
	}
}
