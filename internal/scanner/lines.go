package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// normalizeLine 去除行尾换行符，兼容 Windows 的 \r\n 与 Unix 的 \n。
// 只有紧跟在 \n 之前的 \r 才会被去除。
func normalizeLine(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// countLines 按行流式读取并统计总行数与空行数。
//
// 约束说明：
// - 最后一行即使没有换行符也计为一行
// - 以换行符结尾的文件不会额外多出一行
// - 空行指去掉行尾换行符后长度为 0 的行，不裁剪空白字符
func countLines(reader io.Reader) (int64, int64, error) {
	var lines, blank int64

	bufferedReader := bufio.NewReader(reader)
	for {
		line, err := bufferedReader.ReadString('\n')
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return lines, blank, err
		}

		lines++
		if normalizeLine(line) == "" {
			blank++
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return lines, blank, nil
}
