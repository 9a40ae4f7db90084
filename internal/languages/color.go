package languages

import "fmt"

// Color 是语言的 RGB 强调色。
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Hex 返回形如 #rrggbb 的小写十六进制表示。
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// hex 把 0xRRGGBB 转换为颜色指针，供静态表使用。
func hex(value uint32) *Color {
	return &Color{
		R: uint8((value >> 16) & 0xff),
		G: uint8((value >> 8) & 0xff),
		B: uint8(value & 0xff),
	}
}

func rgb(r, g, b uint8) *Color {
	return &Color{R: r, G: g, B: b}
}
