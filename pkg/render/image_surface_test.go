package render

import (
	"testing"

	"github.com/decker502/protac/pkg/chain"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestImageSurfaceSize 测试尺寸来自图像边界
func TestImageSurfaceSize(t *testing.T) {
	var s chain.Surface = NewImageSurface(ebiten.NewImage(320, 640))

	w, h := s.Size()
	if w != 320 || h != 640 {
		t.Errorf("Size: got %vx%v, want 320x640", w, h)
	}
}

// 编译期检查两种实现都满足 chain.Surface
var (
	_ chain.Surface = (*ImageSurface)(nil)
	_ chain.Surface = (*TerminalSurface)(nil)
)
