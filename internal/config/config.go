package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// デフォルト値。何も設定しない場合はこの固定値で動作する
const (
	DefaultHost       = "0.0.0.0"
	DefaultAPIPort    = 8000
	DefaultStaticPort = 80
	DefaultStaticRoot = "static"
)

// Config はプロセス全体の設定を保持する構造体
type Config struct {
	API    ServerConfig `yaml:"api"`
	Static StaticConfig `yaml:"static"`
}

// ServerConfig は1つのHTTPリスナーの設定
type ServerConfig struct {
	Host string `yaml:"host" validate:"omitempty,ip|hostname_rfc1123"` // 空なら全インターフェース
	Port int    `yaml:"port" validate:"min=1,max=65535"`

	// タイムアウト設定（0 は無効）
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"min=0"`
}

// StaticConfig は静的ファイルサービスの設定
type StaticConfig struct {
	ServerConfig `yaml:",inline"`

	Root string `yaml:"root" validate:"required"` // ドキュメントルート（作業ディレクトリからの相対パス可）
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default はデフォルト設定を返す
func Default() *Config {
	return &Config{
		API: ServerConfig{
			Host: DefaultHost,
			Port: DefaultAPIPort,
		},
		Static: StaticConfig{
			ServerConfig: ServerConfig{
				Host: DefaultHost,
				Port: DefaultStaticPort,
			},
			Root: DefaultStaticRoot,
		},
	}
}

// Load は設定を読み込む
// デフォルト値に .env と環境変数を重ねて検証する
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile はYAMLファイルを重ねて設定を読み込む
// path が空の場合はファイルを読まない
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルの解析に失敗 (%s): %w", path, err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: %v (%s)", fe.Namespace(), fe.Value(), fe.Tag()))
			}
			return fmt.Errorf("無効な設定: %s", strings.Join(msgs, ", "))
		}
		return err
	}
	return nil
}

// APIAddress はAPIサービスのリッスンアドレスを返す
func (c *Config) APIAddress() string {
	return c.API.Address()
}

// StaticAddress は静的ファイルサービスのリッスンアドレスを返す
func (c *Config) StaticAddress() string {
	return c.Static.Address()
}

// Address は host:port 形式のアドレスを返す
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// applyEnv は環境変数で設定を上書きする
func (c *Config) applyEnv() error {
	c.API.Host = getEnvOrDefault("API_HOST", c.API.Host)
	c.Static.Host = getEnvOrDefault("STATIC_HOST", c.Static.Host)
	c.Static.Root = getEnvOrDefault("STATIC_ROOT", c.Static.Root)

	var err error
	if c.API.Port, err = getEnvAsIntOrDefault("API_PORT", c.API.Port); err != nil {
		return err
	}
	if c.Static.Port, err = getEnvAsIntOrDefault("STATIC_PORT", c.Static.Port); err != nil {
		return err
	}
	return nil
}

// loadDotEnv は作業ディレクトリの .env を読み込む（存在しなければ何もしない）
// 既に設定されている環境変数は上書きしない
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(".env の読み込みに失敗: %w", err)
	}
	return nil
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得する
// 値が整数でない場合はエラー
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("環境変数 %s が整数ではありません: %q", key, value)
	}
	return n, nil
}
