package analyzer

import (
	"github.com/google/pprof/profile"
)

// 成绩 profile 的样本值下标
const (
	StudentsValueIndex = 0 // students/count
	MarksValueIndex    = 1 // marks/centipoints
)

// RosterProfile 把花名册编码为 pprof profile，便于用 `go tool pprof` 浏览成绩分布。
// 每个学生一个样本，调用栈为 [学生, "grade X"] (叶子在前，与 pprof 约定一致)，
// 样本值为 {1, 分数*100}，并带有 "grade" 标签。
func RosterProfile(r *Roster) *profile.Profile {
	p := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "students", Unit: "count"},
			{Type: "marks", Unit: "centipoints"},
		},
		DefaultSampleType: "students",
	}

	nextID := uint64(1) // pprof 保留 ID 0
	newLocation := func(name string) *profile.Location {
		fn := &profile.Function{ID: nextID, Name: name, SystemName: name}
		loc := &profile.Location{ID: nextID, Line: []profile.Line{{Function: fn}}}
		nextID++
		p.Function = append(p.Function, fn)
		p.Location = append(p.Location, loc)
		return loc
	}

	gradeLocations := make(map[Grade]*profile.Location, numGrades)
	for _, e := range r.Entries() {
		g := Classify(e.Mark)
		gradeLoc, ok := gradeLocations[g]
		if !ok {
			gradeLoc = newLocation("grade " + g.String())
			gradeLocations[g] = gradeLoc
		}
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{newLocation(e.Name), gradeLoc},
			Value:    []int64{1, toCentipoints(e.Mark)},
			Label:    map[string][]string{"grade": {g.String()}},
		})
	}
	return p
}
