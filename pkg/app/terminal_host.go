package app

import (
	"log"
	"time"

	"github.com/decker502/protac/pkg/animator"
	"github.com/decker502/protac/pkg/render"
	"github.com/decker502/protac/pkg/scenes"
	"github.com/gdamore/tcell/v2"
)

// TerminalFrameInterval 终端宿主轮询调度器的间隔（约 60 FPS）
const TerminalFrameInterval = 16 * time.Millisecond

// TerminalHost 在 tcell 终端中承载 ProtacScene
//
// 事件由单独的 goroutine 读取后经 channel 转交，
// 所有状态修改都发生在 Run 所在的 goroutine 上。
type TerminalHost struct {
	screen    tcell.Screen
	surface   *render.TerminalSurface
	scheduler *animator.Scheduler
	scene     *scenes.ProtacScene

	// 上一个鼠标事件时左键是否按下，只在按下沿触发点击
	buttonDown bool
}

// NewTerminalHost 创建终端宿主，screen 必须已经 Init
func NewTerminalHost(screen tcell.Screen, scheduler *animator.Scheduler) *TerminalHost {
	return &TerminalHost{
		screen:    screen,
		surface:   render.NewTerminalSurface(screen),
		scheduler: scheduler,
		scene:     scenes.NewProtacSceneWithScheduler(scheduler, nil),
	}
}

// Scene 返回承载的视图
func (h *TerminalHost) Scene() *scenes.ProtacScene {
	return h.scene
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
//
// 主指针按下：鼠标左键按下沿、空格、回车。其余输入忽略。
func (h *TerminalHost) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.scene.HandleTap()
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.buttonDown {
			h.scene.HandleTap()
		}
		h.buttonDown = down

	case *tcell.EventResize:
		h.surface.Resize()
		h.screen.Sync()
		h.scene.Invalidate()
		w, hh := h.surface.Size()
		log.Printf("[TerminalHost] Resized to %.0fx%.0f pixels", w, hh)
	}
	return true
}

// Frame 执行到期的延迟回调，有重绘请求时绘制一帧
func (h *TerminalHost) Frame() {
	h.scheduler.Pump()
	if !h.scene.IsInvalidated() {
		return
	}
	h.scene.RenderFrame(h.surface)
	h.surface.Flush()
}

// Run 运行事件循环直到用户退出
func (h *TerminalHost) Run() {
	ticker := time.NewTicker(TerminalFrameInterval)
	defer ticker.Stop()
	defer h.scene.Close()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	h.Frame()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}
