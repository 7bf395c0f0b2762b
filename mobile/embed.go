//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/app.yaml 与根目录 data/app.yaml 结构相同，默认全屏。
package mobile

import "embed"

//go:embed data/app.yaml
var dataFS embed.FS
