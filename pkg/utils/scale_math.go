package utils

import (
	"math"

	"github.com/decker502/protac/pkg/config"
)

// Scale Math (分阶段进度函数)
//
// 把一个全局进度值 x 拆成 n 个依次执行的阶段：
// 第 i 个阶段只有在前面每个阶段各消耗了 1/n 的进度后才开始，
// 并把自己那段进度重新映射到 [0, 1]。
// 所有函数对任意实数 x 和正整数 n 都有定义，没有错误情况。

// Inverse 返回 1/n
func Inverse(n int) float64 {
	return 1.0 / float64(n)
}

// MaxScale 第 i 个阶段（共 n 个）已经获得的进度
// 公式：max(0, x - i/n)
func MaxScale(x float64, i, n int) float64 {
	return math.Max(0, x-float64(i)*Inverse(n))
}

// DivideScale 第 i 个阶段映射到 [0, 1] 的局部进度
// 公式：min(1/n, MaxScale(x, i, n)) * n
func DivideScale(x float64, i, n int) float64 {
	return math.Min(Inverse(n), MaxScale(x, i, n)) * float64(n)
}

// ScaleFactor 当前处于前半周期（0）还是后半周期（1）
// 公式：floor(x / ScDiv)
func ScaleFactor(x float64) float64 {
	return math.Floor(x / config.ScDiv)
}

// MirrorValue 根据所处半周期在 1/a 和 1/b 之间选择步长系数
// 公式：(1-k)/a + k/b，k = ScaleFactor(x)
func MirrorValue(x float64, a, b int) float64 {
	k := ScaleFactor(x)
	return (1-k)*Inverse(a) + k*Inverse(b)
}

// UpdateValue 每次 tick 对进度的增量
// 公式：MirrorValue(x, a, b) * dir * ScGap
func UpdateValue(x, dir float64, a, b int) float64 {
	return MirrorValue(x, a, b) * dir * config.ScGap
}
