package animator

import (
	"errors"
	"sort"
	"time"
)

// ErrSchedulerClosed 调度器关闭后再登记回调时返回
var ErrSchedulerClosed = errors.New("scheduler closed")

// deferred 一个待执行的延迟回调
type deferred struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler 单线程延迟回调队列
//
// 不创建 goroutine，也不阻塞：After 只登记回调，
// 由渲染循环在自己的线程上调用 Pump 执行到期的回调。
type Scheduler struct {
	now     func() time.Time
	pending []deferred
	seq     uint64
	closed  bool
}

// NewScheduler 使用系统时钟创建调度器
func NewScheduler() *Scheduler {
	return NewSchedulerWithClock(time.Now)
}

// NewSchedulerWithClock 使用指定时钟创建调度器（测试用）
func NewSchedulerWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// After 登记一个 d 之后执行的回调
func (s *Scheduler) After(d time.Duration, fn func()) error {
	if s.closed {
		return ErrSchedulerClosed
	}
	s.seq++
	s.pending = append(s.pending, deferred{
		due: s.now().Add(d),
		seq: s.seq,
		fn:  fn,
	})
	return nil
}

// Pump 执行所有已到期的回调，返回执行数量
//
// 回调按到期时间执行，同一时间按登记顺序。
// 回调中登记的新回调留到下一次 Pump。
func (s *Scheduler) Pump() int {
	if len(s.pending) == 0 {
		return 0
	}

	now := s.now()
	var due, rest []deferred
	for _, d := range s.pending {
		if d.due.After(now) {
			rest = append(rest, d)
		} else {
			due = append(due, d)
		}
	}
	s.pending = rest

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	for _, d := range due {
		d.fn()
	}
	return len(due)
}

// Pending 返回尚未执行的回调数量
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Close 关闭调度器并丢弃未执行的回调
func (s *Scheduler) Close() {
	s.closed = true
	s.pending = nil
}
