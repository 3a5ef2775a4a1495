package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/dirprofile/internal/iterm"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

const defaultTimeoutSeconds = 10

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config는 dirprofile 설정 파일의 최상위 구조체다. 모든 필드는 선택 사항이다.
type Config struct {
	StorePath             string `toml:"store_path"`
	AssignmentsPath       string `toml:"assignments_path"`
	CatalogPath           string `toml:"catalog_path"`
	PreferencesPath       string `toml:"preferences_path"`
	CommandTimeoutSeconds int    `toml:"command_timeout_seconds"`
	LogLevel              string `toml:"log_level"`
}

// DefaultPath는 홈 디렉토리 기준 기본 설정 파일 경로를 반환한다.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "dirprofile", "config.toml")
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값만 채운 Config를 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg.applyDefaults(home)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// CommandTimeout은 외부 명령 제한 시간을 반환한다. 0이면 제한 없음이다.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

func (c *Config) applyDefaults(home string) {
	if c.StorePath == "" {
		c.StorePath = iterm.DefaultStorePath(home)
	}
	if c.AssignmentsPath == "" {
		c.AssignmentsPath = filepath.Join(home, ".config", "dirprofile", "presets.json")
	}
	if c.CatalogPath == "" {
		c.CatalogPath = iterm.DefaultCatalogPath
	}
	if c.PreferencesPath == "" {
		c.PreferencesPath = iterm.DefaultPreferencesPath(home)
	}
	if c.CommandTimeoutSeconds == 0 {
		c.CommandTimeoutSeconds = defaultTimeoutSeconds
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	c.StorePath = expandHome(c.StorePath, home)
	c.AssignmentsPath = expandHome(c.AssignmentsPath, home)
	c.CatalogPath = expandHome(c.CatalogPath, home)
	c.PreferencesPath = expandHome(c.PreferencesPath, home)
}

func (c *Config) validate() error {
	if c.CommandTimeoutSeconds < 0 {
		return fmt.Errorf("config.Load: %w: command_timeout_seconds는 0 이상이어야 합니다: %d", ErrConfig, c.CommandTimeoutSeconds)
	}
	valid := false
	for _, l := range validLogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("config.Load: %w: 알 수 없는 log_level %q", ErrConfig, c.LogLevel)
	}
	return nil
}

// expandHome은 "~" 또는 "~/"로 시작하는 경로를 home 기준으로 펼친다.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
