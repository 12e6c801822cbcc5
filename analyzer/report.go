package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// 支持的输出格式
const (
	FormatText           = "text"
	FormatMarkdown       = "markdown"
	FormatJSON           = "json"
	FormatFlameGraphJSON = "flamegraph-json"
)

// OutputFormats 列出所有报告都支持的格式 (flamegraph-json 仅用于等级报告)。
var OutputFormats = []string{FormatText, FormatMarkdown, FormatJSON}

// render 根据格式输出文本或 JSON。text 与 markdown 共用同一段文本，markdown 外包代码块以保持对齐。
func render(format string, writeText func(b *strings.Builder), jsonValue interface{}) (string, error) {
	switch format {
	case FormatText, FormatMarkdown:
		var b strings.Builder
		if format == FormatMarkdown {
			b.WriteString("```text\n")
		}
		writeText(&b)
		if format == FormatMarkdown {
			b.WriteString("```\n")
		}
		return b.String(), nil
	case FormatJSON:
		return marshalResult(jsonValue), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// marshalResult 序列化失败时返回 ErrorResult，而不是把它当作分析错误。
func marshalResult(v interface{}) string {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.WithError(err).Error("Failed to marshal report to JSON")
		errJSON, _ := json.Marshal(ErrorResult{Error: fmt.Sprintf("Failed to marshal result to JSON: %v", err)})
		return string(errJSON)
	}
	return string(jsonBytes)
}

// ReportStatistics 输出人数、平均分、中位数、标准差以及最高/最低分。
func ReportStatistics(r *Roster, format string) (string, error) {
	log.WithFields(log.Fields{"students": r.Len(), "format": format}).Debug("Building statistics report")
	s := Summarize(r)

	return render(format, func(b *strings.Builder) {
		b.WriteString("=== Statistics ===\n")
		fmt.Fprintf(b, "Total students : %d\n", s.Count)
		fmt.Fprintf(b, "Average : %s\n", FormatMark(s.Average))
		fmt.Fprintf(b, "Median : %s\n", FormatMark(s.Median))
		fmt.Fprintf(b, "Std dev : %s\n", FormatMark(s.StdDev))
		if s.Count > 0 {
			fmt.Fprintf(b, "Highest : %s (%s)\n", FormatMark(s.Highest.Mark), s.Highest.Name)
			fmt.Fprintf(b, "Lowest : %s (%s)\n", FormatMark(s.Lowest.Mark), s.Lowest.Name)
		}
	}, StatisticsResult{ReportType: "statistics", Summary: s})
}

// ReportGrades 输出各等级人数。flamegraph-json 格式输出 roster -> grade -> student 的人数树。
func ReportGrades(r *Roster, format string) (string, error) {
	log.WithFields(log.Fields{"students": r.Len(), "format": format}).Debug("Building grade summary report")

	if format == FormatFlameGraphJSON {
		tree, err := BuildFlameGraphTree(RosterProfile(r), StudentsValueIndex)
		if err != nil {
			log.WithError(err).Error("Failed to build flame graph tree")
			errJSON, _ := json.Marshal(ErrorResult{Error: fmt.Sprintf("Failed to build flame graph tree: %v", err)})
			return string(errJSON), nil
		}
		jsonBytes, err := json.Marshal(tree)
		if err != nil {
			errJSON, _ := json.Marshal(ErrorResult{Error: fmt.Sprintf("Failed to marshal flame graph tree to JSON: %v", err)})
			return string(errJSON), nil
		}
		return string(jsonBytes), nil
	}

	grades := AssignGrades(r)
	dist := GradeDistribution(grades)
	rows := gradeRows(r, grades)

	return render(format, func(b *strings.Builder) {
		if r.Len() == 0 {
			b.WriteString("No data to grade yet.\n")
			return
		}
		b.WriteString("=== Grade Summary ===\n")
		for _, g := range Grades {
			fmt.Fprintf(b, "%s : %d\n", g, dist.Count(g))
		}
	}, GradeSummaryResult{ReportType: "grades", Total: dist.Total(), Distribution: dist, Grades: rows})
}

// ReportPassFail 输出及格与不及格名单。
func ReportPassFail(r *Roster, threshold float64, format string) (string, error) {
	log.WithFields(log.Fields{"students": r.Len(), "threshold": threshold, "format": format}).Debug("Building pass/fail report")
	passed, failed := PassFailPartition(r, threshold)

	return render(format, func(b *strings.Builder) {
		fmt.Fprintf(b, "=== Pass/Fail (Pass if >= %s) ===\n", formatThreshold(threshold))
		fmt.Fprintf(b, "Passed (count %d): %s\n", len(passed), FormatNames(passed))
		fmt.Fprintf(b, "Failed (count %d): %s\n", len(failed), FormatNames(failed))
	}, PassFailResult{ReportType: "pass_fail", Threshold: threshold, Passed: passed, Failed: failed})
}

// ReportTable 按花名册顺序输出 Name / Marks / Grade 表格。
func ReportTable(r *Roster, format string) (string, error) {
	log.WithFields(log.Fields{"students": r.Len(), "format": format}).Debug("Building results table")
	rows := gradeRows(r, AssignGrades(r))

	return render(format, func(b *strings.Builder) {
		if len(rows) == 0 {
			b.WriteString("No records to display yet. Please add students first.\n")
			return
		}
		fmt.Fprintf(b, "%-20s %6s %5s\n", "Name", "Marks", "Grade")
		b.WriteString("-------------------- ------ -----\n")
		for _, row := range rows {
			fmt.Fprintf(b, "%-20s %6s %s\n", row.Name, FormatMark(row.Mark), centerGrade(row.Grade))
		}
	}, TableResult{ReportType: "table", Rows: rows})
}

func gradeRows(r *Roster, grades GradeMap) []GradeRow {
	rows := make([]GradeRow, 0, r.Len())
	for _, e := range r.Entries() {
		rows = append(rows, GradeRow{Name: e.Name, Mark: e.Mark, Grade: grades[e.Name]})
	}
	return rows
}

// centerGrade 把单字母等级居中到 5 列宽。
func centerGrade(g Grade) string {
	return fmt.Sprintf("%-5s", "  "+g.String())
}
