package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config openapi-bridge 进程级配置。
// 启动时显式注入（无包级单例）：后端地址、User-Agent、超时、TLS 策略、
// 监听地址、日志级别/格式。
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Backend BackendConfig `yaml:"backend"`
}

// HTTPConfig 工具调用面（agent runtime 侧）的监听配置
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `yaml:"level"`  // debug / info / warn / error
	Format string `yaml:"format"` // json / console
}

// BackendConfig OpenAPI 后端配置
type BackendConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	// TimeoutSeconds 单次请求超时（秒），后端约定为 30
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// InsecureSkipVerify 跳过证书校验。后端使用自签证书，默认 true（与线上行为对齐）
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// Load 从环境变量加载配置；设置 CONFIG_FILE 时再叠加 YAML 文件（文件优先）。
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8090")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Backend.BaseURL = getEnv("OPENAPI_BASE_URL", "https://18.143.168.167:49900")
	cfg.Backend.UserAgent = getEnv("OPENAPI_USER_AGENT", "openapi-mcp/1.0")
	cfg.Backend.TimeoutSeconds = parseInt(getEnv("OPENAPI_TIMEOUT_SECONDS", "30"), 30)
	cfg.Backend.InsecureSkipVerify = getEnv("OPENAPI_INSECURE_SKIP_VERIFY", "true") == "true"

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
