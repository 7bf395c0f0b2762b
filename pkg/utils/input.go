// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPrimaryPointerJustPressed 检查主指针是否刚刚按下
// 只认第一个新触摸或鼠标左键，其余输入（多点触摸、右键、键盘）一律忽略
// 返回是否按下以及按下位置
func IsPrimaryPointerJustPressed() (bool, int, int) {
	// 检查触摸按下（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标按下（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
