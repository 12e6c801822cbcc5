package analyzer

import (
	"encoding/json"
	"fmt"
)

// Grade 是字母等级，按 A..F 的顺序定义，可直接作为 Distribution 的下标。
type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeD
	GradeF

	numGrades = int(GradeF) + 1
)

// Grades 按显示顺序列出所有等级。
var Grades = [numGrades]Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

var gradeNames = [numGrades]string{"A", "B", "C", "D", "F"}

func (g Grade) String() string {
	if g < 0 || int(g) >= numGrades {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeNames[g]
}

// MarshalText 让 Grade 在 JSON 中输出为 "A" 而不是数字。
func (g Grade) MarshalText() ([]byte, error) {
	if g < 0 || int(g) >= numGrades {
		return nil, fmt.Errorf("invalid grade %d", int(g))
	}
	return []byte(gradeNames[g]), nil
}

// UnmarshalText 只接受 "A".."F"。
func (g *Grade) UnmarshalText(text []byte) error {
	for i, name := range gradeNames {
		if name == string(text) {
			*g = Grade(i)
			return nil
		}
	}
	return fmt.Errorf("invalid grade %q", text)
}

// Classify 按分数段给出等级 (下界包含)：
// >=90 A, >=80 B, >=70 C, >=60 D, 其余 F。
// 不做范围截断，超出 [0,100] 的分数同样按此规则处理；NaN 归为 F。
func Classify(mark float64) Grade {
	switch {
	case mark >= 90:
		return GradeA
	case mark >= 80:
		return GradeB
	case mark >= 70:
		return GradeC
	case mark >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// GradeMap 是学生姓名到等级的映射，键集合与来源花名册相同。
type GradeMap map[string]Grade

// AssignGrades 为每个学生计算等级，返回新的 map。
func AssignGrades(r *Roster) GradeMap {
	grades := make(GradeMap, r.Len())
	for _, e := range r.Entries() {
		grades[e.Name] = Classify(e.Mark)
	}
	return grades
}

// Distribution 记录每个等级的人数。固定长度数组，五个等级始终存在。
type Distribution [numGrades]int

// GradeDistribution 统计各等级人数。
func GradeDistribution(gm GradeMap) Distribution {
	var dist Distribution
	for _, g := range gm {
		if g < 0 || int(g) >= numGrades {
			continue
		}
		dist[g]++
	}
	return dist
}

func (d Distribution) Count(g Grade) int {
	if g < 0 || int(g) >= numGrades {
		return 0
	}
	return d[g]
}

// Total 返回总人数，等于花名册长度。
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// MarshalJSON 按 A..F 的顺序输出 {"A":n,...}。
func (d Distribution) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, g := range Grades {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(g.String())
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, []byte(fmt.Sprintf("%d", d[g]))...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON 读取 MarshalJSON 写出的 {"A":n,...}，缺失的等级计为 0。
func (d *Distribution) UnmarshalJSON(data []byte) error {
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return err
	}
	var out Distribution
	for key, n := range counts {
		var g Grade
		if err := g.UnmarshalText([]byte(key)); err != nil {
			return err
		}
		out[g] = n
	}
	*d = out
	return nil
}
