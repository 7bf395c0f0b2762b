// Package chain 实现双线摆动链：节点、节点动画状态和遍历控制
//
// 同一时刻只有一个节点在动画；当前节点收敛后，游标沿遍历方向移动一步，
// 到达两端时先停留一个周期再反向（乒乓遍历）。
// 所有方法都只应在渲染线程上调用。
package chain

import "github.com/decker502/protac/pkg/config"

// Chain 节点链与遍历游标
type Chain struct {
	nodes []*Node
	curr  *Node
	dir   int
}

// NewChain 创建包含 config.Nodes 个节点的链
// 游标从 0 号节点开始，方向为 +1
func NewChain() *Chain {
	return newChain(config.Nodes)
}

func newChain(count int) *Chain {
	c := &Chain{
		nodes: make([]*Node, 0, count),
		dir:   1,
	}
	for i := 0; i < count; i++ {
		c.nodes = append(c.nodes, &Node{i: i, chain: c})
	}
	c.curr = c.nodes[0]
	return c
}

// at 按下标取节点，越界返回 nil
func (c *Chain) at(i int) *Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

// Len 返回节点数量
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Node 返回第 i 个节点，越界返回 nil
func (c *Chain) Node(i int) *Node {
	return c.at(i)
}

// Current 返回当前动画目标的下标
func (c *Chain) Current() int {
	return c.curr.i
}

// Direction 返回遍历方向（+1 / -1）
func (c *Chain) Direction() int {
	return c.dir
}

// Draw 依次绘制所有节点
func (c *Chain) Draw(s Surface) {
	for _, n := range c.nodes {
		n.Draw(s)
	}
}

// Update 推进当前节点
// 收敛后游标前进一步（到端点时反向），然后以 (下标, 进度) 调用 cb
func (c *Chain) Update(cb func(i int, scale float64)) {
	c.curr.Update(func(i int, scale float64) {
		c.curr = c.curr.GetNext(c.dir, func() {
			c.dir *= -1
		})
		cb(i, scale)
	})
}

// StartUpdating 开始当前节点的动画
func (c *Chain) StartUpdating(cb func()) {
	c.curr.StartUpdating(cb)
}
