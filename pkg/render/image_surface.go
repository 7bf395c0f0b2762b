// Package render 提供 chain.Surface 的具体实现
//
//   - ImageSurface: 绘制到 Ebitengine 图像（桌面 / 移动端）
//   - TerminalSurface: 用半格字符绘制到 tcell 终端
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface 包装 *ebiten.Image
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface 创建图像绘制目标
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Size 返回图像宽高
func (s *ImageSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Fill 填充纯色
func (s *ImageSurface) Fill(clr color.Color) {
	s.img.Fill(clr)
}

// StrokeLine 绘制圆头线段
// vector.StrokeLine 只有平头，两端各补一个半径为线宽一半的实心圆
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
	r := float32(width / 2)
	vector.DrawFilledCircle(s.img, float32(x0), float32(y0), r, clr, true)
	vector.DrawFilledCircle(s.img, float32(x1), float32(y1), r, clr, true)
}
