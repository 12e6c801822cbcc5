package analyzer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMark 把分数格式化为两位小数 (例如 "78.00")。
func FormatMark(mark float64) string {
	return fmt.Sprintf("%.2f", mark)
}

// FormatNames 用逗号连接姓名，空列表返回 "None"。
func FormatNames(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

// formatThreshold 去掉多余的小数位，40 显示为 "40.0"，62.5 显示为 "62.5"，1e6 显示为 "1000000.0"。
func formatThreshold(threshold float64) string {
	s := strconv.FormatFloat(threshold, 'f', -1, 64)
	if !strings.ContainsAny(s, ".nN") { // 整数补 ".0"，跳过 NaN / Inf
		s += ".0"
	}
	return s
}

// toCentipoints 把分数转换为 pprof 样本值所需的整数 (百分之一分)。
// 超出 int64 范围的分数截断到 MaxInt64 / MinInt64。
func toCentipoints(mark float64) int64 {
	if math.IsNaN(mark) {
		return 0
	}
	v := math.Round(mark * 100)
	switch {
	case v >= math.MaxInt64: // float64(MaxInt64) 即 2^63
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}
