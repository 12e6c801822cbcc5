package analyzer

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"github.com/montanaflynn/stats"
)

// Average 返回所有分数的算术平均值，空花名册返回 0.0。
func Average(r *Roster) float64 {
	if r.Len() == 0 {
		return 0.0
	}
	// 非空输入时 stats.Mean 不会返回错误
	mean, _ := stats.Mean(r.Marks())
	return mean
}

// Median 返回所有分数的中位数 (偶数个时取中间两个的平均值)，空花名册返回 0.0。
func Median(r *Roster) float64 {
	if r.Len() == 0 {
		return 0.0
	}
	// stats.Median 内部会先复制再排序，不会改动 Marks() 的结果
	median, _ := stats.Median(r.Marks())
	return median
}

// MaxScore 返回最高分的学生。分数并列时取花名册中最先出现的那个。
// 空花名册返回 ("", 0.0)。
func MaxScore(r *Roster) (string, float64) {
	return pickScore(r, func(candidate, best float64) bool { return candidate > best })
}

// MinScore 返回最低分的学生，并列规则与 MaxScore 相同。
func MinScore(r *Roster) (string, float64) {
	return pickScore(r, func(candidate, best float64) bool { return candidate < best })
}

// pickScore 按顺序扫描，只有严格更优时才替换，从而保证"先出现者胜出"。
func pickScore(r *Roster, better func(candidate, best float64) bool) (string, float64) {
	entries := r.Entries()
	if len(entries) == 0 {
		return "", 0.0
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if better(e.Mark, best.Mark) {
			best = e
		}
	}
	return best.Name, best.Mark
}

// StdDev 返回样本标准差，少于两个分数时返回 0.0。
func StdDev(r *Roster) float64 {
	if r.Len() < 2 {
		return 0.0
	}
	sd := mstats.Sample{Xs: r.Marks()}.StdDev()
	if math.IsNaN(sd) {
		return 0.0
	}
	return sd
}

// Summary 汇总一次统计请求需要的所有数值。
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	StdDev  float64 `json:"stdDev"`
	Highest Entry   `json:"highest"`
	Lowest  Entry   `json:"lowest"`
}

// Summarize 一次性计算 Summary，每次调用都重新计算。
func Summarize(r *Roster) Summary {
	maxName, maxMark := MaxScore(r)
	minName, minMark := MinScore(r)
	return Summary{
		Count:   r.Len(),
		Average: Average(r),
		Median:  Median(r),
		StdDev:  StdDev(r),
		Highest: Entry{Name: maxName, Mark: maxMark},
		Lowest:  Entry{Name: minName, Mark: minMark},
	}
}
