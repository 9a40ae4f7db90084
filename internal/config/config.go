// Package config 负责加载 kc 的默认参数。
// 优先级从低到高：内置默认值、YAML 配置文件、.env 文件、环境变量；命令行参数最终覆盖一切。
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kc/internal/report"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FileName 是默认的 YAML 配置文件名，位于扫描启动目录下。
	FileName = ".kc.yaml"
	// EnvFileName 是可选的 dotenv 文件名。
	EnvFileName = ".env"

	envConfig   = "KC_CONFIG"
	envReporter = "KC_REPORTER"
	envWidth    = "KC_WIDTH"
	envWorkers  = "KC_WORKERS"
	envDetailed = "KC_DETAILED"
)

// Config 是命令行参数的默认值。
type Config struct {
	Reporter report.Kind `yaml:"reporter"`
	// Width 为 0 时由命令行探测终端宽度。
	Width int `yaml:"width"`
	// Workers 为 0 时使用 runtime.NumCPU()。
	Workers  int  `yaml:"workers"`
	Detailed bool `yaml:"detailed"`
}

// Default 返回内置默认配置。
func Default() Config {
	return Config{Reporter: report.Terminal}
}

// Load 从 dir 读取 .env 与 YAML 配置，再叠加环境变量。
// 两个文件都不存在时返回默认配置；显式指定的 KC_CONFIG 不存在则报错。
func Load(dir string) (Config, error) {
	cfg := Default()

	dotenv, err := readDotenv(filepath.Join(dir, EnvFileName))
	if err != nil {
		return cfg, err
	}
	lookup := func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}

	path, explicit := filepath.Join(dir, FileName), false
	if value, ok := lookup(envConfig); ok && strings.TrimSpace(value) != "" {
		path, explicit = strings.TrimSpace(value), true
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
	}
	if err := readYAML(path, explicit, &cfg); err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate 检查配置取值是否合法，并把 reporter 规范化。
func (c *Config) Validate() error {
	kind, err := report.ParseKind(string(c.Reporter))
	if err != nil {
		return fmt.Errorf("config reporter: %w", err)
	}
	c.Reporter = kind

	if c.Width < 0 {
		return fmt.Errorf("config width must not be negative, got %d", c.Width)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

func readYAML(path string, explicit bool, cfg *Config) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if value, ok := lookup(envReporter); ok && value != "" {
		cfg.Reporter = report.Kind(value)
	}

	for key, target := range map[string]*int{envWidth: &cfg.Width, envWorkers: &cfg.Workers} {
		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*target = parsed
	}

	if value, ok := lookup(envDetailed); ok && value != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", envDetailed, err)
		}
		cfg.Detailed = parsed
	}
	return nil
}
