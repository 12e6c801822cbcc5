package analyzer

// --- JSON 输出结构体定义 ---

// ErrorResult 用于在 JSON 格式中返回错误信息
type ErrorResult struct {
	Error string `json:"error"`
}

// StatisticsResult 代表统计报告 (JSON)
type StatisticsResult struct {
	ReportType string `json:"reportType"`
	Summary
}

// GradeSummaryResult 代表等级分布报告 (JSON)
type GradeSummaryResult struct {
	ReportType   string       `json:"reportType"`
	Total        int          `json:"total"`
	Distribution Distribution `json:"distribution"` // 始终包含 A..F 五个键
	Grades       []GradeRow   `json:"grades"`       // 按花名册顺序
}

// GradeRow 是单个学生的分数与等级
type GradeRow struct {
	Name  string  `json:"name"`
	Mark  float64 `json:"mark"`
	Grade Grade   `json:"grade"`
}

// PassFailResult 代表及格/不及格报告 (JSON)
type PassFailResult struct {
	ReportType string   `json:"reportType"`
	Threshold  float64  `json:"threshold"`
	Passed     []string `json:"passed"`
	Failed     []string `json:"failed"`
}

// TableResult 代表成绩表 (JSON)
type TableResult struct {
	ReportType string     `json:"reportType"`
	Rows       []GradeRow `json:"rows"`
}

// FlameGraphNode 代表火焰图中的一个节点 (JSON)
// 层级为 roster -> grade -> student，适合 d3-flame-graph 等库使用
type FlameGraphNode struct {
	Name     string            `json:"name"`
	Value    int64             `json:"value"`              // 该节点及其子节点的总值
	Children []*FlameGraphNode `json:"children,omitempty"` // 子节点列表
}
