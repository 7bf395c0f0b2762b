package main

import (
	"flag"
	"log"

	"github.com/decker502/protac/pkg/app"
	"github.com/decker502/protac/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	widthFlag      = flag.Int("width", 0, "Window width (0 = use data/app.yaml)")
	heightFlag     = flag.Int("height", 0, "Window height (0 = use data/app.yaml)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Fullscreen: *fullscreenFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	gameApp.ApplyWindowSettings()

	// 启动主循环，直到窗口关闭
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
