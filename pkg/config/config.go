// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	GetAll() map[string]interface{}
	// Unmarshal은 전체 설정을 mapstructure 태그가 달린 구조체로 디코딩합니다.
	Unmarshal(out interface{}) error
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

// GetString은 문자열 설정 값을 반환합니다.
func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt는 정수 설정 값을 반환합니다.
func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool은 불리언 설정 값을 반환합니다.
func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetDuration은 "30s", "5m" 형식의 기간 설정 값을 반환합니다.
func (c *viperConfig) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// GetStringSlice는 문자열 슬라이스 설정 값을 반환합니다.
func (c *viperConfig) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// IsSet은 키가 파일, 환경 변수 또는 기본값으로 설정되었는지 확인합니다.
func (c *viperConfig) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetAll은 전체 설정을 맵으로 반환합니다.
func (c *viperConfig) GetAll() map[string]interface{} {
	return c.v.AllSettings()
}

func (c *viperConfig) Unmarshal(out interface{}) error {
	return c.v.Unmarshal(out)
}

// 설정 디렉토리 경로
const configDir = "configs"

// Option은 Load 동작을 조정합니다.
type Option func(*options)

type options struct {
	dirs     []string
	defaults map[string]interface{}
	optional bool
}

// WithConfigDir는 설정 파일을 찾을 디렉토리를 지정합니다. 먼저 추가된 디렉토리가 우선합니다.
func WithConfigDir(dir string) Option {
	return func(o *options) { o.dirs = append(o.dirs, dir) }
}

// WithDefaults는 설정 파일과 환경 변수에 값이 없을 때 사용할 기본값을 지정합니다.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *options) { o.defaults = defaults }
}

// WithOptionalFile은 설정 파일이 없어도 기본값과 환경 변수만으로 로드를 허용합니다.
func WithOptionalFile() Option {
	return func(o *options) { o.optional = true }
}

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
//
// 탐색 순서: WithConfigDir로 지정한 디렉토리, $CONFIG_PATH, configs/{APP_ENV}, configs/example.
// 환경 변수는 {SERVICE}_ 접두사와 "." -> "_" 치환으로 모든 키를 덮어씁니다.
func Load(serviceName string, opts ...Option) (Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(serviceName)

	for key, value := range o.defaults {
		v.SetDefault(key, value)
	}

	// 환경 변수 바인딩 설정
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	dirs := append([]string{}, o.dirs...)
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		dirs = append(dirs, configPath)
	}
	dirs = append(dirs, filepath.Join(configDir, env), filepath.Join(configDir, "example"))

	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || !o.optional {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
