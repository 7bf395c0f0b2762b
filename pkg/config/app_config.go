package config

import (
	"fmt"
	"log"

	"github.com/decker502/protac/pkg/embedded"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 宿主窗口配置
//
// 只描述承载视图的外壳（窗口尺寸、标题、全屏等），
// 动画常量不在此处，见 protac.go。
//
// 配置文件位置: data/app.yaml

const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 480
	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 800
	// DefaultTPS 默认逻辑帧率
	DefaultTPS = 60

	// AppName gdata 使用的应用名
	AppName = "protac"

	// gdata 中用户覆盖配置的存储位置
	overrideObject   = "shell"
	overrideProperty = "override"
)

// AppConfig 宿主外壳配置
type AppConfig struct {
	Window WindowConfig `yaml:"window"`

	// TPS 每秒逻辑更新次数（Ebitengine Update 调用频率）
	TPS int `yaml:"tps"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// DefaultAppConfig 返回默认配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Width:     DefaultWindowWidth,
			Height:    DefaultWindowHeight,
			Title:     "Linked Double Line Protac",
			Resizable: true,
		},
		TPS: DefaultTPS,
	}
}

// ParseAppConfig 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *AppConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}

	return cfg, nil
}

// LoadAppConfig 从嵌入资源加载配置
//
// 文件不存在时返回默认配置。
func LoadAppConfig(path string) (*AppConfig, error) {
	if !embedded.Exists(path) {
		log.Printf("[Config] %s not found, using defaults", path)
		return DefaultAppConfig(), nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config %s: %w", path, err)
	}

	return ParseAppConfig(data)
}

// Validate 验证配置有效性
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// ApplyUserOverride 使用平台数据目录中的用户覆盖配置
//
// 覆盖配置由用户手工放置，程序只读不写。
// gdataManager 为 nil 或覆盖不存在时什么也不做。
//
// 返回:
//   - error: 覆盖存在但无法读取或解析时返回错误，c 保持不变
func (c *AppConfig) ApplyUserOverride(gdataManager *gdata.Manager) error {
	if gdataManager == nil {
		return nil
	}

	if !gdataManager.ObjectPropExists(overrideObject, overrideProperty) {
		return nil
	}

	data, err := gdataManager.LoadObjectProp(overrideObject, overrideProperty)
	if err != nil {
		return fmt.Errorf("failed to load shell override: %w", err)
	}

	merged := *c
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to unmarshal shell override: %w", err)
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid shell override: %w", err)
	}

	*c = merged
	log.Printf("[Config] Applied user override: %dx%d fullscreen=%v",
		c.Window.Width, c.Window.Height, c.Window.Fullscreen)
	return nil
}

// OpenUserData 打开 gdata 管理器
//
// 失败时返回 nil（降级模式，仅使用嵌入配置）。
func OpenUserData() *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Config] Warning: gdata unavailable: %v (user override disabled)", err)
		return nil
	}
	return m
}
