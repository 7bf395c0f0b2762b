package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T, cols, rows int) (tcell.SimulationScreen, *TerminalSurface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen, NewTerminalSurface(screen)
}

// TestTerminalSurfaceSize 每个字符格对应上下两个像素
func TestTerminalSurfaceSize(t *testing.T) {
	_, s := newTestTerminal(t, 40, 20)

	w, h := s.Size()
	if w != 40 || h != 40 {
		t.Errorf("Size: got %vx%v, want 40x40", w, h)
	}
}

// TestTerminalSurfaceFill 测试整屏填充
func TestTerminalSurfaceFill(t *testing.T) {
	_, s := newTestTerminal(t, 10, 5)

	s.Fill(color.RGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF})

	want := tcell.NewRGBColor(0xBD, 0xBD, 0xBD)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := s.Pixel(x, y); got != want {
				t.Fatalf("Pixel(%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestTerminalSurfaceStrokeLine 测试竖线覆盖端点且不越界
func TestTerminalSurfaceStrokeLine(t *testing.T) {
	_, s := newTestTerminal(t, 20, 10)
	bg := color.RGBA{A: 0xFF}
	fg := color.RGBA{R: 0x67, G: 0x3A, B: 0xB7, A: 0xFF}
	s.Fill(bg)

	s.StrokeLine(10, 2, 10, 15, 3, fg)
	// 超出画布的线段不应 panic
	s.StrokeLine(-5, -5, 50, 50, 3, fg)

	want := toTcellColor(fg)
	for y := 2; y <= 15; y++ {
		if got := s.Pixel(10, y); got != want {
			t.Errorf("Pixel(10, %d): got %v, want %v", y, got, want)
		}
	}
	if got := s.Pixel(3, 10); got != toTcellColor(bg) {
		t.Errorf("Pixel(3, 10) should stay background, got %v", got)
	}
}

// TestTerminalSurfaceFlush 测试写屏后每格为半格字符
func TestTerminalSurfaceFlush(t *testing.T) {
	screen, s := newTestTerminal(t, 4, 2)
	s.Fill(color.White)
	s.Flush()

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			mainc, _, _, _ := screen.GetContent(col, row)
			if mainc != upperHalfBlock {
				t.Errorf("cell (%d, %d): got %q, want %q", col, row, mainc, upperHalfBlock)
			}
		}
	}
}
