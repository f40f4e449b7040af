package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Logger struct {
		Level             string
		Encoding          string
		DisableCaller     bool `mapstructure:"disable_caller"`
		DisableStacktrace bool `mapstructure:"disable_stacktrace"`
	} `mapstructure:"logger"`

	Store struct {
		PageSize          int  `mapstructure:"page_size"`
		ActivityLogLimit  int  `mapstructure:"activity_log_limit"`
		NotificationLimit int  `mapstructure:"notification_limit"`
		SeedDemoData      bool `mapstructure:"seed_demo_data"`
	} `mapstructure:"store"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	User struct {
		Name  string
		Email string
		Role  string
	} `mapstructure:"user"`
}

// IsDevelopment включает консольный логгер и debug-уровень
func (c Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "production")
	v.SetDefault("http.addr", ":9091")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.disable_caller", false)
	v.SetDefault("logger.disable_stacktrace", false)
	v.SetDefault("store.page_size", 10)
	v.SetDefault("store.activity_log_limit", 100)
	v.SetDefault("store.notification_limit", 50)
	v.SetDefault("store.seed_demo_data", true)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("user.name", "Admin User")
	v.SetDefault("user.email", "admin@stockflow.local")
	v.SetDefault("user.role", "admin")
}

// Load читает .env (если есть), затем файл конфигурации (если задан путь)
// и переменные окружения STOCKFLOW_*. Окружение перекрывает файл.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("STOCKFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
