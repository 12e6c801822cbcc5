package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

// Config 是 gradebook.yaml 的结构
type Config struct {
	PassThreshold float64      `yaml:"pass_threshold"`
	OutputFormat  string       `yaml:"output_format"`
	LogLevel      string       `yaml:"log_level"`
	Server        ServerConfig `yaml:"server"`
}

// ServerConfig 是 MCP 服务器的名称与版本
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// 可覆盖配置文件的环境变量
const (
	envPassThreshold = "GRADEBOOK_PASS_THRESHOLD"
	envOutputFormat  = "GRADEBOOK_OUTPUT_FORMAT"
	envLogLevel      = "GRADEBOOK_LOG_LEVEL"
)

func defaultConfig() Config {
	return Config{
		PassThreshold: analyzer.DefaultPassThreshold,
		OutputFormat:  analyzer.FormatText,
		LogLevel:      "warn",
		Server: ServerConfig{
			Name:    "GradeBook",
			Version: "0.1.0",
		},
	}
}

// loadConfig 依次应用：默认值 -> yaml 配置文件 (不存在时跳过) -> .env / 环境变量。
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
		logrus.Debugf("Loaded config from %s", path)
	case errors.Is(err, os.ErrNotExist):
		logrus.Debugf("Config file %s not found, using defaults", path)
	default:
		return cfg, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	// .env 是可选的，缺失时不报错
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("Failed to load .env file: %v", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPassThreshold); ok && v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envPassThreshold, v, err)
		}
		c.PassThreshold = threshold
	}
	if v, ok := os.LookupEnv(envOutputFormat); ok && v != "" {
		c.OutputFormat = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate 检查输出格式与日志级别。
func (c Config) Validate() error {
	if !isOutputFormat(c.OutputFormat) {
		return fmt.Errorf("unsupported output_format '%s'", c.OutputFormat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	if math.IsNaN(c.PassThreshold) {
		return fmt.Errorf("pass_threshold must be a number")
	}
	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range analyzer.OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
