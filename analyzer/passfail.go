package analyzer

// DefaultPassThreshold 是默认及格线。
const DefaultPassThreshold = 40.0

// PassFailPartition 按及格线把学生分为两组：分数 >= threshold 为及格，其余 (含 NaN) 为不及格。
// 两组都保持花名册顺序，且永远不是 nil。
func PassFailPartition(r *Roster, threshold float64) (passed, failed []string) {
	passed = make([]string, 0, r.Len())
	failed = make([]string, 0)
	for _, e := range r.Entries() {
		if e.Mark >= threshold {
			passed = append(passed, e.Name)
		} else {
			failed = append(failed, e.Name)
		}
	}
	return passed, failed
}
