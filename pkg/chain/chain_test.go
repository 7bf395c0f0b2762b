package chain

import (
	"image/color"
	"testing"

	"github.com/decker502/protac/pkg/config"
)

// recordingSurface 记录绘制调用的测试用 Surface
type recordingSurface struct {
	w, h   float64
	fills  int
	lines  []Segment
	widths []float64
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Fill(color.Color) { s.fills++ }

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, _ color.Color) {
	s.lines = append(s.lines, Segment{x0, y0, x1, y1})
	s.widths = append(s.widths, width)
}

// runCycle 启动当前节点并 tick 到收敛，返回收敛的节点下标和进度
func runCycle(t *testing.T, c *Chain) (int, float64) {
	t.Helper()
	c.StartUpdating(func() {})

	for ticks := 0; ticks < maxTicks; ticks++ {
		idx, scale, done := -1, 0.0, false
		c.Update(func(i int, sc float64) {
			idx, scale, done = i, sc, true
		})
		if done {
			return idx, scale
		}
	}
	t.Fatalf("node %d did not converge", c.Current())
	return 0, 0
}

// TestNewChain 测试链的构建
func TestNewChain(t *testing.T) {
	c := NewChain()

	if c.Len() != config.Nodes {
		t.Fatalf("Len: got %d, want %d", c.Len(), config.Nodes)
	}
	if c.Current() != 0 {
		t.Errorf("Current: got %d, want 0", c.Current())
	}
	if c.Direction() != 1 {
		t.Errorf("Direction: got %d, want 1", c.Direction())
	}

	for i := 0; i < c.Len(); i++ {
		n := c.Node(i)
		if n.Index() != i {
			t.Errorf("node %d has index %d", i, n.Index())
		}
		if (n.Prev() == nil) != (i == 0) {
			t.Errorf("node %d: unexpected prev %v", i, n.Prev())
		}
		if (n.Next() == nil) != (i == c.Len()-1) {
			t.Errorf("node %d: unexpected next %v", i, n.Next())
		}
		if n.Next() != nil && n.Next().Prev() != n {
			t.Errorf("node %d: next.prev is not the node itself", i)
		}
	}

	if c.Node(-1) != nil || c.Node(c.Len()) != nil {
		t.Error("Expected nil for out of range nodes")
	}
}

// TestNodeGetNext 测试邻居查找和端点回调
func TestNodeGetNext(t *testing.T) {
	c := NewChain()

	tests := []struct {
		name         string
		from, dir    int
		want         int
		wantBoundary bool
	}{
		{"首节点向前", 0, 1, 1, false},
		{"首节点向后", 0, -1, 0, true},
		{"中间向后", 2, -1, 1, false},
		{"末节点向前", config.Nodes - 1, 1, config.Nodes - 1, true},
		{"末节点向后", config.Nodes - 1, -1, config.Nodes - 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boundary := false
			got := c.Node(tt.from).GetNext(tt.dir, func() { boundary = true })
			if got.Index() != tt.want {
				t.Errorf("GetNext: got %d, want %d", got.Index(), tt.want)
			}
			if boundary != tt.wantBoundary {
				t.Errorf("boundary: got %v, want %v", boundary, tt.wantBoundary)
			}
		})
	}
}

// TestChainPingPong 测试乒乓遍历：端点节点先展开再收回，然后反向
func TestChainPingPong(t *testing.T) {
	c := NewChain()

	expected := []struct {
		index int
		scale float64
	}{
		{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1},
		{4, 0}, {3, 0}, {2, 0}, {1, 0}, {0, 0},
		{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1},
	}

	for step, want := range expected {
		idx, scale := runCycle(t, c)
		if idx != want.index || scale != want.scale {
			t.Fatalf("step %d: converged (%d, %v), want (%d, %v)", step, idx, scale, want.index, want.scale)
		}
	}
}

// TestChainDistinctTraversal 去掉端点停留后，游标依次经过 0..4, 3..0, 1..4
func TestChainDistinctTraversal(t *testing.T) {
	c := NewChain()

	var visited []int
	for len(visited) < 13 {
		idx, _ := runCycle(t, c)
		if len(visited) == 0 || visited[len(visited)-1] != idx {
			visited = append(visited, idx)
		}
	}

	want := []int{0, 1, 2, 3, 4, 3, 2, 1, 0, 1, 2, 3, 4}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

// TestChainOnlyCurrentAnimates 测试同一时刻只有当前节点在动画
func TestChainOnlyCurrentAnimates(t *testing.T) {
	c := NewChain()
	c.StartUpdating(func() {})
	for i := 0; i < 10; i++ {
		c.Update(func(int, float64) {})
	}

	for i := 0; i < c.Len(); i++ {
		idle := c.Node(i).State().IsIdle()
		if i == 0 && idle {
			t.Error("node 0 should be animating")
		}
		if i != 0 && !idle {
			t.Errorf("node %d should be idle", i)
		}
	}
}

// TestChainDraw 测试每个节点绘制两条线段
func TestChainDraw(t *testing.T) {
	c := NewChain()
	s := &recordingSurface{w: 480, h: 600}

	c.Draw(s)

	if len(s.lines) != config.Nodes*config.Lines {
		t.Fatalf("lines: got %d, want %d", len(s.lines), config.Nodes*config.Lines)
	}
	for _, w := range s.widths {
		if w != 480.0/config.StrokeFactor {
			t.Errorf("stroke width: got %v, want %v", w, 480.0/config.StrokeFactor)
		}
	}
}
