package chain

import (
	"math"

	"github.com/decker502/protac/pkg/config"
	"github.com/decker502/protac/pkg/utils"
)

// Segment 一条待绘制的线段（绝对坐标）
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Segments 计算第 i 个节点在给定进度下的线段
//
// 节点中心位于 (w/2, gap*(i+1))，gap = h/(Nodes+1)。
// 阶段 0：两条线分别向两侧旋转 ±RotationDeg*sc1；
// 阶段 1：线段长度从 size 延伸到 2*size。
func Segments(i int, scale, w, h float64) []Segment {
	gap := h / float64(config.Nodes+1)
	size := gap / config.SizeFactor
	sc1 := utils.DivideScale(scale, 0, config.Lines)
	sc2 := utils.DivideScale(scale, 1, config.Lines)

	cx := w / 2
	cy := gap * float64(i+1)
	length := size * (1 + sc2)

	segments := make([]Segment, 0, config.Lines)
	for j := 0; j < config.Lines; j++ {
		sf := 1.0 - 2*float64(j)
		rad := config.RotationDeg * sf * sc1 * math.Pi / 180
		// 初始方向竖直向上，顺时针旋转
		dx := length * math.Sin(rad)
		dy := -length * math.Cos(rad)
		segments = append(segments, Segment{
			X0: cx,
			Y0: cy,
			X1: cx + dx,
			Y1: cy + dy,
		})
	}
	return segments
}

// StrokeWidth 根据画布尺寸计算线宽
func StrokeWidth(w, h float64) float64 {
	return math.Min(w, h) / config.StrokeFactor
}
