package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

// 输入校验错误。分析层不做校验，所有拒绝都发生在这里。
var (
	errNotWholeNumber = errors.New("not a whole number")
	errNegativeCount  = errors.New("count must not be negative")
	errEmptyName      = errors.New("name cannot be empty")
	errNotNumber      = errors.New("not a number")
	errMarkOutOfRange = errors.New("mark must be between 0 and 100")
)

const (
	minMark = 0.0
	maxMark = 100.0
)

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotWholeNumber, s)
	}
	if n < 0 {
		return 0, errNegativeCount
	}
	return n, nil
}

func parseName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", errEmptyName
	}
	return name, nil
}

func parseMark(s string) (float64, error) {
	m, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotNumber, s)
	}
	return m, validateMark(m)
}

// validateMark 只接受 [0,100]，NaN 也会被拒绝。
func validateMark(m float64) error {
	if !(m >= minMark && m <= maxMark) {
		return fmt.Errorf("%w: %v", errMarkOutOfRange, m)
	}
	return nil
}

// retryMessage 把校验错误转换为提示用户重新输入的文字。
func retryMessage(err error) string {
	switch {
	case errors.Is(err, errNotWholeNumber):
		return "Please enter a whole number like 0, 1, 2, ..."
	case errors.Is(err, errNegativeCount):
		return "Please enter 0 or a positive number."
	case errors.Is(err, errEmptyName):
		return "Name cannot be empty. Try again."
	case errors.Is(err, errNotNumber):
		return "Please type a number like 75 or 89.5"
	case errors.Is(err, errMarkOutOfRange):
		return "Marks must be between 0 and 100."
	default:
		return err.Error()
	}
}

// prompter 负责逐行读取键盘输入，单行长度不设上限。
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask 打印问题并读取一行 (已去除首尾空白)。输入结束时返回 io.EOF。
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		// 最后一行没有换行符时仍然返回它
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askUntilValid 重复提问，直到 parse 成功。
func askUntilValid[T any](p *prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, retryMessage(err))
	}
}

// readStudents 询问人数，再逐个读取姓名和分数。
func (p *prompter) readStudents() (*analyzer.Roster, error) {
	n, err := askUntilValid(p, "How many students? ", parseCount)
	if err != nil {
		return nil, err
	}

	roster := analyzer.NewRoster()
	for i := 1; i <= n; i++ {
		name, err := askUntilValid(p, fmt.Sprintf("Enter name for student %d: ", i), parseName)
		if err != nil {
			return nil, err
		}
		mark, err := askUntilValid(p, fmt.Sprintf("Enter marks for %s (0-100): ", name), parseMark)
		if err != nil {
			return nil, err
		}
		roster.Set(name, mark)
	}
	return roster, nil
}
