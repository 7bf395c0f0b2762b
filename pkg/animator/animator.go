// Package animator 提供自驱动的动画节拍器
//
// Animator 在动画进行期间每收到一次重绘就执行一步动画，
// 然后通过 Scheduler 延迟 config.TickInterval 再请求下一次重绘，
// 渲染线程从不阻塞等待。
package animator

import (
	"log"
	"time"

	"github.com/decker502/protac/pkg/config"
)

// Animator 动画调度标志 + 重绘请求信号
type Animator struct {
	animated  bool
	interval  time.Duration
	scheduler *Scheduler
	onRedraw  func()
}

// NewAnimator 创建动画器
// scheduler 由宿主的渲染循环驱动
func NewAnimator(scheduler *Scheduler) *Animator {
	return &Animator{
		interval:  config.TickInterval,
		scheduler: scheduler,
		onRedraw:  func() {},
	}
}

// OnRedraw 订阅重绘请求信号，宿主只需订阅一次
func (a *Animator) OnRedraw(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	a.onRedraw = fn
}

// IsAnimating 是否处于动画中
func (a *Animator) IsAnimating() bool {
	return a.animated
}

// Animate 执行一步动画
//
// 未在动画中时什么也不做；否则调用 cb，再延迟 interval 后请求重绘。
// cb 中调用 Stop 时也照常请求，让收敛后的最终状态被绘制出来。
// 登记延迟失败只记录日志，不影响渲染循环。
func (a *Animator) Animate(cb func()) {
	if !a.animated {
		return
	}

	cb()

	if err := a.scheduler.After(a.interval, a.requestRedraw); err != nil {
		log.Printf("[Animator] Failed to schedule next frame: %v", err)
	}
}

// Start 开始动画并立即请求重绘
func (a *Animator) Start() {
	if a.animated {
		return
	}
	a.animated = true
	a.requestRedraw()
}

// Stop 停止动画
// 已登记的重绘仍会到达，但 Animate 会检查标志
func (a *Animator) Stop() {
	a.animated = false
}

func (a *Animator) requestRedraw() {
	a.onRedraw()
}
