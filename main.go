package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

// newMCPServer 创建 MCP 服务器并注册所有工具。
func newMCPServer(cfg Config) *server.MCPServer {
	// 1. 初始化 MCP 服务器
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithLogging(),  // 启用日志记录
		server.WithRecovery(), // 启用 panic 恢复
	)

	rosterParam := mcp.WithString("roster",
		mcp.Description(`学生分数的 JSON 数组，按输入顺序排列，例如 '[{"name":"Alice","mark":78},{"name":"Bob","mark":92}]'。分数必须在 0-100 之间。`),
		mcp.Required(),
	)

	// 2. 定义 analyze_roster 工具及其参数
	analyzeTool := mcp.NewTool("analyze_roster",
		mcp.WithDescription("计算花名册的统计信息 (平均分、中位数、最高/最低分)、等级分布、及格名单或成绩表。"),
		rosterParam,
		mcp.WithString("report_type",
			mcp.Description("要生成的报告类型。"),
			mcp.Required(),
			mcp.Enum("statistics", "grades", "pass_fail", "table"),
		),
		mcp.WithNumber("pass_threshold",
			mcp.Description("及格线，分数 >= 及格线视为及格 (仅用于 pass_fail)。"),
			mcp.DefaultNumber(cfg.PassThreshold),
		),
		mcp.WithString("output_format",
			mcp.Description("输出格式。flamegraph-json 仅适用于 grades 报告。"),
			mcp.DefaultString(cfg.OutputFormat),
			mcp.Enum(analyzer.FormatText, analyzer.FormatMarkdown, analyzer.FormatJSON, analyzer.FormatFlameGraphJSON),
		),
	)

	// 3. 定义 classify_mark 工具
	classifyTool := mcp.NewTool("classify_mark",
		mcp.WithDescription("返回单个分数对应的字母等级 (A/B/C/D/F)。"),
		mcp.WithNumber("mark",
			mcp.Description("要分级的分数。"),
			mcp.Required(),
		),
	)

	// 4. 定义 export_grade_profile 工具
	exportTool := mcp.NewTool("export_grade_profile",
		mcp.WithDescription("把花名册导出为 pprof profile (gzip)，可用 'go tool pprof' 查看等级分布火焰图。"),
		rosterParam,
		mcp.WithString("output_path",
			mcp.Description("profile 文件的保存路径 (绝对路径或相对于工作目录的路径)。"),
			mcp.Required(),
		),
	)

	// 5. 将所有工具及其处理器函数添加到服务器
	mcpServer.AddTool(analyzeTool, newAnalyzeRosterHandler(cfg))
	mcpServer.AddTool(classifyTool, handleClassifyMark)
	mcpServer.AddTool(exportTool, handleExportGradeProfile)

	return mcpServer
}

// setupLogging 配置 logrus。日志写到 stderr，stdout 留给菜单输出或 MCP 协议。
func setupLogging(level string) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}

func main() {
	configPath := flag.String("config", "gradebook.yaml", "配置文件路径 (不存在时使用默认值)")
	mode := flag.String("mode", "menu", "运行模式：menu (交互式菜单) 或 serve (MCP stdio 服务器)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "menu":
		if err := newSession(cfg, os.Stdin, os.Stdout).run(); err != nil {
			logrus.Fatalf("Menu error: %v", err)
		}
	case "serve":
		// 6. Start the server using stdio transport
		logrus.Infof("Starting %s MCP server via stdio...", cfg.Server.Name)
		if err := server.ServeStdio(newMCPServer(cfg)); err != nil {
			logrus.Fatalf("Server error: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode '%s' (expected 'menu' or 'serve')\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}
