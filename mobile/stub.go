//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建（go build ./...）时只编译此文件，
// 绑定入口 mobile.go 与数据嵌入 embed.go 需要 -tags mobile。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
