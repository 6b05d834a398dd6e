package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config 應用程式的完整配置
type Config struct {
	App    AppConfig
	Server ServerConfig
	DB     DBConfig
}

type AppConfig struct {
	Env string
}

type ServerConfig struct {
	Address     string
	CorsOrigins []string `mapstructure:"cors_origins"`
}

type DBConfig struct {
	Driver       string // "postgres" 或 "sqlite"
	Host         string
	User         string
	Password     string
	Name         string
	Port         int
	SSLMode      string `mapstructure:"sslmode"`
	TimeZone     string `mapstructure:"timezone"`
	Path         string // 只有 sqlite 使用
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// IsProduction 判斷是否為正式環境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load 從預設路徑讀取配置
func Load() (*Config, error) {
	return LoadFrom("./pkg/config")
}

// LoadFrom 從指定目錄讀取 config.yaml，環境變數 (CAMPUS_ 前綴) 會覆蓋文件中的值。
// 找不到配置文件時只使用預設值和環境變數。
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix("campus")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "campus")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.path", "campus.db")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
}
