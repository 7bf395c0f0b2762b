//go:build mobile

package utils

// IsMobile 移动端编译时恒为 true
// 此时视图铺满屏幕，不设置窗口尺寸和标题
func IsMobile() bool {
	return true
}
