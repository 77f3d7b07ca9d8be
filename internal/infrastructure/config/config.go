package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/hostmail-io/hostmail/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Payment   sharedConfig.PaymentConfig   `mapstructure:"payment"`
	Storage   sharedConfig.StorageConfig   `mapstructure:"storage"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
	Webhook   sharedConfig.WebhookConfig   `mapstructure:"webhook"`
	Scheduler sharedConfig.SchedulerConfig `mapstructure:"scheduler"`
	Business  sharedConfig.BusinessConfig  `mapstructure:"business"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("HOSTMAIL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "hostmail_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "text")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.access_exp_minutes", 60)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("email.enabled", false)
	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("email.from_name", "HostMail")

	viper.SetDefault("payment.mode", "sandbox")

	viper.SetDefault("storage.base_dir", "./data/uploads")

	viper.SetDefault("rate_limit.contact_submit_per_minute", 10)
	viper.SetDefault("rate_limit.contact_submit_per_hour", 100)

	viper.SetDefault("webhook.workers", 4)
	viper.SetDefault("webhook.queue_size", 256)
	viper.SetDefault("webhook.max_retries", 3)
	viper.SetDefault("webhook.timeout_secs", 10)
	viper.SetDefault("webhook.retry_backoff_secs", 30)

	viper.SetDefault("scheduler.usage_reset_interval_minutes", 60)
	viper.SetDefault("scheduler.expiry_interval_hours", 24)

	viper.SetDefault("business.timezone", "UTC")
}
