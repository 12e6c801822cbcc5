package analyzer

// Entry 是花名册中的一条记录 (学生姓名 + 分数)。
type Entry struct {
	Name string  `json:"name"`
	Mark float64 `json:"mark"`
}

// Roster 保存所有学生的分数，并保留插入顺序。
// Go 的 map 不保证遍历顺序，而 MaxScore/MinScore 的并列规则和表格显示都依赖顺序，
// 所以这里用切片 + 索引实现。
// nil *Roster 视为空花名册。
type Roster struct {
	entries []Entry
	index   map[string]int // name -> entries 中的下标
}

// NewRoster 按给定顺序创建花名册，重复的姓名以后出现的分数为准。
func NewRoster(entries ...Entry) *Roster {
	r := &Roster{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		r.Set(e.Name, e.Mark)
	}
	return r
}

// Set 添加或更新一个学生。已存在的姓名保持原位置，只更新分数。
func (r *Roster) Set(name string, mark float64) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.entries[i].Mark = mark
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Mark: mark})
}

// Merge 把 other 中的记录按顺序合并进来。
func (r *Roster) Merge(other *Roster) {
	for _, e := range other.Entries() {
		r.Set(e.Name, e.Mark)
	}
}

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries 返回记录的副本，调用方修改它不会影响花名册。
func (r *Roster) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Roster) Names() []string {
	names := make([]string, 0, r.Len())
	for _, e := range r.Entries() {
		names = append(names, e.Name)
	}
	return names
}

func (r *Roster) Marks() []float64 {
	marks := make([]float64, 0, r.Len())
	for _, e := range r.Entries() {
		marks = append(marks, e.Mark)
	}
	return marks
}

// Mark 查询某个学生的分数。
func (r *Roster) Mark(name string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.entries[i].Mark, true
}
