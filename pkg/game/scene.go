package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a view hosted by the app.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closable 是一个可选接口，场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - SceneManager 切换到其他场景
//   - 窗口关闭、程序退出
type Closable interface {
	Close()
}
