package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"phasor/figure"
)

// Config 命令行配置
type Config struct {
	OutDir   string // 输出目录
	Format   string // 导出格式
	DPI      int    // 位图分辨率
	LogLevel string // 日志级别
	Pretty   bool   // 控制台日志格式
}

// Load 从环境变量与 .env 文件读取配置
// 不做检查，命令行参数覆盖后再调用 Validate
func Load(files ...string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load(files...)

	cfg := &Config{
		OutDir:   getEnv("PHASOR_OUT", "."),
		Format:   getEnv("PHASOR_FORMAT", "png"),
		DPI:      getEnvAsInt("PHASOR_DPI", figure.DPI),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Pretty:   getEnvAsBool("LOG_PRETTY", true),
	}
	return cfg, nil
}

// Validate 检查配置
func (c *Config) Validate() error {
	if !figure.IsFormat(c.Format) {
		return fmt.Errorf("PHASOR_FORMAT 不支持: %q", c.Format)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("PHASOR_DPI 必须为正数: %d", c.DPI)
	}
	if c.OutDir == "" {
		return fmt.Errorf("PHASOR_OUT 不能为空")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
