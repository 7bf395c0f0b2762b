package chain

import (
	"math"

	"github.com/decker502/protac/pkg/config"
	"github.com/decker502/protac/pkg/utils"
)

// AnimationState 单个节点的动画进度
//
// 不变量：
//   - dir == 0 当且仅当节点空闲
//   - 动画中 |scale - prevScale| 单调增长，越过 1 后吸附到 prevScale + dir 并复位
type AnimationState struct {
	scale     float64 // 当前进度
	dir       float64 // -1 / 0 / +1，0 表示空闲
	prevScale float64 // 上一次收敛时的进度（0 或 1）
}

// Scale 返回当前进度
func (s *AnimationState) Scale() float64 {
	return s.scale
}

// Dir 返回当前方向
func (s *AnimationState) Dir() float64 {
	return s.dir
}

// PrevScale 返回上一次收敛时的进度
func (s *AnimationState) PrevScale() float64 {
	return s.prevScale
}

// IsIdle 节点是否空闲
func (s *AnimationState) IsIdle() bool {
	return s.dir == 0
}

// Update 推进一步
// 越过收敛阈值时吸附到稳定值、进入空闲，并以新的稳定值调用 cb
func (s *AnimationState) Update(cb func(prevScale float64)) {
	s.scale += utils.UpdateValue(s.scale, s.dir, config.Lines, config.Lines)
	if math.Abs(s.scale-s.prevScale) > 1 {
		s.scale = s.prevScale + s.dir
		s.dir = 0
		s.prevScale = s.scale
		cb(s.prevScale)
	}
}

// StartUpdating 开始一个动画周期
// 方向由上一次的稳定值决定（0 → +1，1 → -1）；动画进行中重复调用被忽略
func (s *AnimationState) StartUpdating(cb func()) {
	if s.dir != 0 {
		return
	}
	s.dir = 1 - 2*s.prevScale
	cb()
}
