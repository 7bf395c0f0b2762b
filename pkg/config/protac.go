package config

import (
	"image/color"
	"time"
)

// 双线摆动链（Protac）动画常量
// 这些值是固定的视觉/时序参数，不对外暴露为可配置项

const (
	// Nodes 链上的节点数量
	Nodes = 5

	// Lines 每个节点的阶段数（旋转阶段 + 延伸阶段）
	// 同时也是每个节点绘制的线段数量
	Lines = 2

	// ScGap 每次 tick 的基础步长
	ScGap = 0.05

	// ScDiv 阶段切换阈值，略大于 0.5，使 ScaleFactor 在一个周期内只切换一次
	ScDiv = 0.51

	// SizeFactor 节点间距与线段长度之比：size = gap / SizeFactor
	SizeFactor = 2.7

	// StrokeFactor 线宽 = min(w, h) / StrokeFactor
	StrokeFactor = 90.0

	// RotationDeg 旋转阶段的最大旋转角度（度）
	RotationDeg = 45.0

	// TickInterval 两次动画步进之间的间隔
	TickInterval = 50 * time.Millisecond
)

var (
	// ForeColor 线段颜色 #673AB7
	ForeColor = color.RGBA{R: 0x67, G: 0x3A, B: 0xB7, A: 0xFF}

	// BackColor 背景颜色 #BDBDBD
	BackColor = color.RGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF}
)
