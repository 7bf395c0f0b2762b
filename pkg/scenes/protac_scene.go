package scenes

import (
	"log"

	"github.com/decker502/protac/pkg/animator"
	"github.com/decker502/protac/pkg/chain"
	"github.com/decker502/protac/pkg/config"
	"github.com/decker502/protac/pkg/render"
	"github.com/decker502/protac/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ProtacScene 双线摆动链视图
//
// 每次重绘：清屏 → 绘制整条链 → 若在动画中推进一步。
// 点击只在当前节点空闲时生效，同时启动节点动画和动画器。
//
// 与 Android View 的 invalidate 语义一致，只有收到重绘请求时才真正绘制，
// 宿主需关闭 Ebitengine 的逐帧清屏（ebiten.SetScreenClearedEveryFrame(false)）。
type ProtacScene struct {
	chain     *chain.Chain
	animator  *animator.Animator
	scheduler *animator.Scheduler

	// invalidated 有待处理的重绘请求
	invalidated bool
	// 上一次绘制时的屏幕尺寸，变化时重绘
	lastWidth, lastHeight int

	tapSource   func() bool
	onConverged func(i int, scale float64)
}

// NewProtacScene 创建视图，读取 Ebitengine 的主指针输入
func NewProtacScene() *ProtacScene {
	return NewProtacSceneWithScheduler(animator.NewScheduler(), func() bool {
		pressed, _, _ := utils.IsPrimaryPointerJustPressed()
		return pressed
	})
}

// NewProtacSceneWithScheduler 使用指定调度器和点击来源创建视图
// tapSource 每次 Update 调用一次，返回 true 表示本帧有一次主指针按下
func NewProtacSceneWithScheduler(scheduler *animator.Scheduler, tapSource func() bool) *ProtacScene {
	s := &ProtacScene{
		chain:     chain.NewChain(),
		animator:  animator.NewAnimator(scheduler),
		scheduler: scheduler,
		// 挂载后需要绘制第一帧
		invalidated: true,
		tapSource:   tapSource,
	}
	s.animator.OnRedraw(s.Invalidate)
	return s
}

// SetConvergeListener 设置节点收敛回调（可为 nil）
func (s *ProtacScene) SetConvergeListener(fn func(i int, scale float64)) {
	s.onConverged = fn
}

// Chain 返回节点链
func (s *ProtacScene) Chain() *chain.Chain {
	return s.chain
}

// Animator 返回动画器
func (s *ProtacScene) Animator() *animator.Animator {
	return s.animator
}

// Invalidate 请求一次重绘
func (s *ProtacScene) Invalidate() {
	s.invalidated = true
}

// IsInvalidated 是否有待处理的重绘请求
func (s *ProtacScene) IsInvalidated() bool {
	return s.invalidated
}

// Update 执行到期的延迟回调并处理点击
func (s *ProtacScene) Update(deltaTime float64) {
	s.scheduler.Pump()

	if s.tapSource != nil && s.tapSource() {
		s.HandleTap()
	}
}

// Draw 有重绘请求或屏幕尺寸变化时绘制一帧
func (s *ProtacScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Dx() != s.lastWidth || b.Dy() != s.lastHeight {
		s.lastWidth, s.lastHeight = b.Dx(), b.Dy()
		s.invalidated = true
	}

	if !s.invalidated {
		return
	}
	s.RenderFrame(render.NewImageSurface(screen))
}

// RenderFrame 绘制一帧并推进动画
// 任一节点收敛时立即停止动画器
func (s *ProtacScene) RenderFrame(surface chain.Surface) {
	s.invalidated = false

	surface.Fill(config.BackColor)
	s.chain.Draw(surface)
	s.animator.Animate(func() {
		s.chain.Update(func(i int, scale float64) {
			s.animator.Stop()
			log.Printf("[ProtacScene] Node %d converged at %.0f, next node %d", i, scale, s.chain.Current())
			if s.onConverged != nil {
				s.onConverged(i, scale)
			}
		})
	})
}

// HandleTap 处理主指针按下
// 事件总是被消费，返回 true
func (s *ProtacScene) HandleTap() bool {
	s.chain.StartUpdating(s.animator.Start)
	return true
}

// Close 关闭调度器，丢弃尚未执行的重绘请求
func (s *ProtacScene) Close() {
	s.scheduler.Close()
}
