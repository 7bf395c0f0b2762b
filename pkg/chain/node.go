package chain

import "github.com/decker502/protac/pkg/config"

// Node 链上的一个节点
//
// 邻居通过所属链的切片按下标查找，节点本身不持有邻居。
type Node struct {
	i     int
	state AnimationState
	chain *Chain
}

// Index 返回节点下标
func (n *Node) Index() int {
	return n.i
}

// State 返回节点的动画状态
func (n *Node) State() *AnimationState {
	return &n.state
}

// Draw 绘制本节点的两条线段
func (n *Node) Draw(s Surface) {
	w, h := s.Size()
	width := StrokeWidth(w, h)
	for _, seg := range Segments(n.i, n.state.Scale(), w, h) {
		s.StrokeLine(seg.X0, seg.Y0, seg.X1, seg.Y1, width, config.ForeColor)
	}
}

// Update 推进本节点的动画，收敛时以 (下标, 新进度) 调用 cb
func (n *Node) Update(cb func(i int, scale float64)) {
	n.state.Update(func(scale float64) {
		cb(n.i, scale)
	})
}

// StartUpdating 开始本节点的动画
func (n *Node) StartUpdating(cb func()) {
	n.state.StartUpdating(cb)
}

// Prev 返回前一个节点，首节点返回 nil
func (n *Node) Prev() *Node {
	return n.chain.at(n.i - 1)
}

// Next 返回后一个节点，末节点返回 nil
func (n *Node) Next() *Node {
	return n.chain.at(n.i + 1)
}

// GetNext 返回 dir 方向上的邻居
// 到达链的端点时调用 onBoundary 并返回自身
func (n *Node) GetNext(dir int, onBoundary func()) *Node {
	var curr *Node
	if dir == -1 {
		curr = n.Prev()
	} else {
		curr = n.Next()
	}

	if curr == nil {
		onBoundary()
		return n
	}
	return curr
}
