package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// upperHalfBlock 上半格字符：前景色画上半像素，背景色画下半像素
const upperHalfBlock = '▀'

// TerminalSurface 把终端当作 cols × (rows*2) 的像素网格
//
// 绘制先写入内存缓冲，Flush 时一次性写到屏幕。
type TerminalSurface struct {
	screen tcell.Screen
	cols   int
	rows   int
	pixels []tcell.Color
}

// NewTerminalSurface 创建终端绘制目标
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	s := &TerminalSurface{screen: screen}
	s.Resize()
	return s
}

// Resize 根据屏幕当前尺寸重建像素缓冲
func (s *TerminalSurface) Resize() {
	s.cols, s.rows = s.screen.Size()
	s.pixels = make([]tcell.Color, s.cols*s.rows*2)
}

// Size 返回像素网格宽高
func (s *TerminalSurface) Size() (float64, float64) {
	return float64(s.cols), float64(s.rows * 2)
}

// Fill 填充纯色
func (s *TerminalSurface) Fill(clr color.Color) {
	c := toTcellColor(clr)
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// StrokeLine 以线宽为直径沿线段盖圆点，两端自然为圆头
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c := toTcellColor(clr)
	r := math.Max(width/2, 0.75)

	length := math.Hypot(x1-x0, y1-y0)
	steps := int(math.Ceil(length)) + 1
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		s.stamp(x0+(x1-x0)*t, y0+(y1-y0)*t, r, c)
	}
}

// stamp 在 (cx, cy) 画半径为 r 的实心圆
func (s *TerminalSurface) stamp(cx, cy, r float64, c tcell.Color) {
	h := s.rows * 2
	minX := int(math.Floor(cx - r))
	maxX := int(math.Ceil(cx + r))
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))
	for y := minY; y <= maxY; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= s.cols {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				s.pixels[y*s.cols+x] = c
			}
		}
	}
}

// Pixel 返回 (x, y) 处的颜色，越界返回 tcell.ColorDefault
func (s *TerminalSurface) Pixel(x, y int) tcell.Color {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows*2 {
		return tcell.ColorDefault
	}
	return s.pixels[y*s.cols+x]
}

// Flush 把缓冲写到屏幕并显示
func (s *TerminalSurface) Flush() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pixels[(row*2)*s.cols+col]
			bottom := s.pixels[(row*2+1)*s.cols+col]
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
	s.screen.Show()
}

func toTcellColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
