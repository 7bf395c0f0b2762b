package chain

import "image/color"

// Surface 绘制目标
//
// 由宿主提供（Ebitengine 图像、终端等），坐标单位为像素。
type Surface interface {
	// Size 返回可绘制区域的宽高
	Size() (w, h float64)

	// Fill 用纯色清空整个区域
	Fill(clr color.Color)

	// StrokeLine 绘制一条带圆头的线段
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}
