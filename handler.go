package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

// textResult 把文本包装为工具结果。
func textResult(texts ...string) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(texts))
	for _, t := range texts {
		content = append(content, mcp.TextContent{Type: "text", Text: t})
	}
	return &mcp.CallToolResult{Content: content}
}

// newAnalyzeRosterHandler 返回 "analyze_roster" 工具的处理器函数。
// 未提供的 pass_threshold / output_format 使用配置中的默认值。
func newAnalyzeRosterHandler(cfg Config) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments

		// --- 1. 获取并验证参数 ---
		roster, err := decodeRoster(args["roster"])
		if err != nil {
			return nil, err
		}
		reportType, ok := args["report_type"].(string)
		if !ok || reportType == "" {
			return nil, fmt.Errorf("missing or invalid required argument: report_type (string)")
		}
		outputFormat, ok := args["output_format"].(string)
		if !ok || outputFormat == "" {
			outputFormat = cfg.OutputFormat
		}
		threshold, ok := args["pass_threshold"].(float64)
		if !ok {
			threshold = cfg.PassThreshold
		}

		logger := logrus.WithFields(logrus.Fields{
			"tool":      "analyze_roster",
			"report":    reportType,
			"format":    outputFormat,
			"students":  roster.Len(),
			"threshold": threshold,
		})
		logger.Info("Handling analyze_roster")

		// --- 2. 根据报告类型分发 ---
		var result string
		switch reportType {
		case "statistics":
			result, err = analyzer.ReportStatistics(roster, outputFormat)
		case "grades":
			result, err = analyzer.ReportGrades(roster, outputFormat)
		case "pass_fail":
			result, err = analyzer.ReportPassFail(roster, threshold, outputFormat)
		case "table":
			result, err = analyzer.ReportTable(roster, outputFormat)
		default:
			err = fmt.Errorf("unsupported report type: '%s'", reportType)
		}
		if err != nil {
			logger.WithError(err).Warn("Analysis failed")
			return nil, err
		}

		logger.WithField("length", len(result)).Debug("Analysis successful")
		return textResult(result), nil
	}
}

// handleClassifyMark 处理 "classify_mark"：返回单个分数对应的等级。
// 与分析层一致，不做范围截断。
func handleClassifyMark(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mark, ok := request.Params.Arguments["mark"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing or invalid required argument: mark (number)")
	}
	grade := analyzer.Classify(mark)
	logrus.WithFields(logrus.Fields{"mark": mark, "grade": grade.String()}).Debug("Classified mark")
	return textResult(grade.String()), nil
}

// handleExportGradeProfile 处理 "export_grade_profile"：把花名册写成 pprof profile (gzip)，
// 之后可以用 `go tool pprof -http=: <file>` 浏览各等级的分布。
func handleExportGradeProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	roster, err := decodeRoster(args["roster"])
	if err != nil {
		return nil, err
	}
	rawPath, _ := args["output_path"].(string)
	outputPath, err := resolveOutputPath(rawPath)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{"tool": "export_grade_profile", "students": roster.Len(), "output": outputPath})
	logger.Info("Handling export_grade_profile")

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory for '%s': %w", outputPath, err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file '%s': %w", outputPath, err)
	}

	writeErr := analyzer.RosterProfile(roster).Write(f)
	closeErr := f.Close()
	if writeErr != nil {
		os.Remove(outputPath)
		return nil, fmt.Errorf("failed to write grade profile '%s': %w", outputPath, writeErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close grade profile '%s': %w", outputPath, closeErr)
	}

	logger.Info("Grade profile written")
	return textResult(
		fmt.Sprintf("Grade profile for %d students written to: %s", roster.Len(), outputPath),
		fmt.Sprintf("View it with: go tool pprof -http=:8081 %s", outputPath),
	), nil
}
