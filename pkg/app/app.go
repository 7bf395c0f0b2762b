// Package app 提供视图应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/protac/pkg/config"
	"github.com/decker502/protac/pkg/game"
	"github.com/decker502/protac/pkg/scenes"
	"github.com/decker502/protac/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ShellConfigPath 嵌入的外壳配置文件
const ShellConfigPath = "data/app.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 强制全屏启动（覆盖配置文件）
	Fullscreen bool
	// Width, Height 大于 0 时覆盖配置文件中的窗口尺寸
	Width, Height int
}

// App 是视图应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	scene                    *scenes.ProtacScene
	shell                    *config.AppConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	shell, err := LoadShellConfig(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Window %dx%d fullscreen=%v tps=%d",
		shell.Window.Width, shell.Window.Height, shell.Window.Fullscreen, shell.TPS)

	// 挂载视图：整个窗口就是唯一的绘制表面
	sceneManager := game.NewSceneManager()
	scene := scenes.NewProtacScene()
	sceneManager.SwitchTo(scene)
	log.Printf("[App] ProtacScene attached (%d nodes)", scene.Chain().Len())

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		shell:        shell,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadShellConfig 加载外壳配置
//
// 顺序：嵌入的 data/app.yaml → 平台数据目录中的用户覆盖（只读）→ 命令行参数。
// 用户覆盖读取失败只记录日志。
func LoadShellConfig(cfg Config) (*config.AppConfig, error) {
	shell, err := config.LoadAppConfig(ShellConfigPath)
	if err != nil {
		return nil, fmt.Errorf("外壳配置加载失败: %w", err)
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Config] Warning: %v", err)
	}
	if err := shell.ApplyUserOverride(config.OpenUserData()); err != nil {
		log.Printf("[Config] Warning: %v (ignored)", err)
	}

	if cfg.Width > 0 {
		shell.Window.Width = cfg.Width
	}
	if cfg.Height > 0 {
		shell.Window.Height = cfg.Height
	}
	if cfg.Fullscreen {
		shell.Window.Fullscreen = true
	}
	return shell, nil
}

// ApplyWindowSettings 把外壳配置应用到 Ebitengine
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	// 只在收到重绘请求时绘制，其余帧保留上一帧画面
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetTPS(a.shell.TPS)

	if utils.IsMobile() {
		return
	}

	ebiten.SetWindowSize(a.shell.Window.Width, a.shell.Window.Height)
	ebiten.SetWindowTitle(a.shell.Window.Title)
	if a.shell.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(a.shell.Window.Fullscreen)
}

// Update 更新逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.shell.Window.Width, a.shell.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.shell.Window.Width, a.shell.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面
// 每帧调用一次，场景自行决定是否需要重绘
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 视图铺满整个窗口，尺寸随窗口变化
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close 关闭当前场景（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
}

// GetScene 返回视图场景
func (a *App) GetScene() *scenes.ProtacScene {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
