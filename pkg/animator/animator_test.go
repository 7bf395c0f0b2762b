package animator

import (
	"testing"
	"time"

	"github.com/decker502/protac/pkg/config"
)

func newTestAnimator() (*Animator, *Scheduler, *manualClock, *int) {
	clock := newManualClock()
	s := NewSchedulerWithClock(clock.Now)
	a := NewAnimator(s)
	redraws := 0
	a.OnRedraw(func() { redraws++ })
	return a, s, clock, &redraws
}

// TestAnimatorInitial 测试初始状态
func TestAnimatorInitial(t *testing.T) {
	a, _, _, redraws := newTestAnimator()

	if a.IsAnimating() {
		t.Error("Expected new animator not to be animating")
	}

	a.Animate(func() { t.Error("Animate must not call cb when idle") })
	if *redraws != 0 {
		t.Errorf("redraws: got %d, want 0", *redraws)
	}
}

// TestAnimatorStart 测试 Start 立即请求一次重绘，重复 Start 无效
func TestAnimatorStart(t *testing.T) {
	a, _, _, redraws := newTestAnimator()

	a.Start()
	if !a.IsAnimating() {
		t.Fatal("Expected animator to be animating after Start")
	}
	if *redraws != 1 {
		t.Fatalf("redraws after Start: got %d, want 1", *redraws)
	}

	a.Start()
	if *redraws != 1 {
		t.Errorf("redraws after second Start: got %d, want 1", *redraws)
	}
}

// TestAnimatorDeferredRedraw 测试重绘请求延迟 TickInterval 且不阻塞
func TestAnimatorDeferredRedraw(t *testing.T) {
	a, s, clock, redraws := newTestAnimator()
	a.Start()

	steps := 0
	begin := time.Now()
	a.Animate(func() { steps++ })
	if elapsed := time.Since(begin); elapsed >= config.TickInterval {
		t.Errorf("Animate blocked for %v", elapsed)
	}

	if steps != 1 {
		t.Fatalf("steps: got %d, want 1", steps)
	}
	if *redraws != 1 {
		t.Fatalf("redraw requested before interval elapsed")
	}

	clock.Advance(config.TickInterval - time.Millisecond)
	s.Pump()
	if *redraws != 1 {
		t.Fatalf("redraw requested 1ms early")
	}

	clock.Advance(time.Millisecond)
	s.Pump()
	if *redraws != 2 {
		t.Errorf("redraws: got %d, want 2", *redraws)
	}
}

// TestAnimatorStopInsideStep 测试步进中 Stop 后仍请求一次重绘，之后不再步进
func TestAnimatorStopInsideStep(t *testing.T) {
	a, s, clock, redraws := newTestAnimator()
	a.Start()

	a.Animate(func() { a.Stop() })
	if a.IsAnimating() {
		t.Fatal("Expected animator to stop")
	}

	clock.Advance(config.TickInterval)
	s.Pump()
	if *redraws != 2 {
		t.Fatalf("final redraw: got %d redraws, want 2", *redraws)
	}

	a.Animate(func() { t.Error("cb called after Stop") })
	if s.Pending() != 0 {
		t.Errorf("Pending: got %d, want 0", s.Pending())
	}
}

// TestAnimatorScheduleFailureSwallowed 测试调度失败不会中断动画
func TestAnimatorScheduleFailureSwallowed(t *testing.T) {
	a, s, _, _ := newTestAnimator()
	a.Start()
	s.Close()

	steps := 0
	a.Animate(func() { steps++ })

	if steps != 1 {
		t.Errorf("steps: got %d, want 1", steps)
	}
	if !a.IsAnimating() {
		t.Error("Expected animator to keep animating after schedule failure")
	}
}
