package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

// session 持有整个运行期间的花名册，菜单的每次操作都读取或合并它。
type session struct {
	cfg    Config
	roster *analyzer.Roster
	input  *prompter
	out    io.Writer
}

func newSession(cfg Config, in io.Reader, out io.Writer) *session {
	return &session{
		cfg:    cfg,
		roster: analyzer.NewRoster(),
		input:  newPrompter(in, out),
		out:    out,
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out, "\n========== GradeBook Menu ==========")
	fmt.Fprintln(s.out, "1. Enter student data")
	fmt.Fprintln(s.out, "2. Show statistics")
	fmt.Fprintln(s.out, "3. Show grades + counts")
	fmt.Fprintf(s.out, "4. Show pass/fail lists (pass=%s)\n", formatMarkInput(s.cfg.PassThreshold))
	fmt.Fprintln(s.out, "5. Show results table")
	fmt.Fprintln(s.out, "6. Exit")
}

// run 执行菜单循环，选择 6 或输入结束 (EOF) 时返回 nil。
func (s *session) run() error {
	for {
		s.printMenu()
		choice, err := s.input.ask("Choose [1-6]: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		if choice == "6" {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if err := s.handle(choice); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return nil
			}
			return err
		}
	}
}

func (s *session) handle(choice string) error {
	logrus.WithField("choice", choice).Debug("Handling menu choice")

	var (
		report string
		err    error
	)
	switch choice {
	case "1":
		added, err := s.input.readStudents()
		if err != nil {
			return err
		}
		s.roster.Merge(added)
		logrus.WithFields(logrus.Fields{"added": added.Len(), "total": s.roster.Len()}).Info("Merged student data")
		fmt.Fprintln(s.out, "Current marks:", describeRoster(s.roster))
		return nil
	case "2":
		report, err = analyzer.ReportStatistics(s.roster, s.cfg.OutputFormat)
	case "3":
		report, err = analyzer.ReportGrades(s.roster, s.cfg.OutputFormat)
	case "4":
		report, err = analyzer.ReportPassFail(s.roster, s.cfg.PassThreshold, s.cfg.OutputFormat)
	case "5":
		report, err = analyzer.ReportTable(s.roster, s.cfg.OutputFormat)
	default:
		fmt.Fprintln(s.out, "Invalid option. Please choose a number from 1 to 6.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to build report for option %s: %w", choice, err)
	}

	fmt.Fprint(s.out, "\n", report)
	if !strings.HasSuffix(report, "\n") {
		fmt.Fprintln(s.out)
	}
	return nil
}

// describeRoster 以 "Alice=78.00, Bob=92.00" 的形式列出当前数据。
func describeRoster(r *analyzer.Roster) string {
	if r.Len() == 0 {
		return "(none)"
	}
	parts := make([]string, 0, r.Len())
	for _, e := range r.Entries() {
		parts = append(parts, e.Name+"="+analyzer.FormatMark(e.Mark))
	}
	return strings.Join(parts, ", ")
}

// formatMarkInput 显示配置中的及格线，例如 40 -> "40"，62.5 -> "62.5"，1e6 -> "1000000"。
func formatMarkInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
