package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

// decodeRoster 解析工具参数中的花名册。
// - 字符串：JSON 数组，例如 `[{"name":"Alice","mark":78}]`
// - 数组：客户端直接传入的 JSON 数组 (已被解码为 []interface{})
// 校验规则与控制台输入一致：姓名非空，分数在 [0,100]。重复姓名以后出现的为准。
func decodeRoster(raw interface{}) (*analyzer.Roster, error) {
	var data []byte
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("missing or invalid required argument: roster (JSON array)")
		}
		data = []byte(v)
	case []interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to re-encode roster argument: %w", err)
		}
		data = b
	default:
		return nil, fmt.Errorf("missing or invalid required argument: roster (JSON array)")
	}

	var entries []analyzer.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid roster JSON: %w", err)
	}

	roster := analyzer.NewRoster()
	for i, e := range entries {
		name, err := parseName(e.Name)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		if err := validateMark(e.Mark); err != nil {
			return nil, fmt.Errorf("roster entry %d (%s): %w", i, name, err)
		}
		roster.Set(name, e.Mark)
	}
	return roster, nil
}

// resolveOutputPath 把相对路径转换为相对于当前工作目录的绝对路径。
func resolveOutputPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("missing or invalid required argument: output_path (string)")
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve relative output path '%s': %w", path, err)
	}
	abs := filepath.Join(cwd, path)
	logrus.Debugf("Resolved relative output path %s to %s", path, abs)
	return abs, nil
}
