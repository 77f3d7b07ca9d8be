package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost    string `mapstructure:"smtp_host"`
	SMTPPort    int    `mapstructure:"smtp_port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	Enabled     bool   `mapstructure:"enabled"`
}

type PaymentConfig struct {
	// Mode selects the gateway implementation: "sandbox" or "paypal".
	Mode         string `mapstructure:"mode"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	ReturnURL    string `mapstructure:"return_url"`
	CancelURL    string `mapstructure:"cancel_url"`
}

type StorageConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

type RateLimitConfig struct {
	ContactSubmitPerMinute int `mapstructure:"contact_submit_per_minute"`
	ContactSubmitPerHour   int `mapstructure:"contact_submit_per_hour"`
}

type WebhookConfig struct {
	Workers      int `mapstructure:"workers"`
	QueueSize    int `mapstructure:"queue_size"`
	MaxRetries   int `mapstructure:"max_retries"`
	TimeoutSecs  int `mapstructure:"timeout_secs"`
	RetryBackoff int `mapstructure:"retry_backoff_secs"`
}

type SchedulerConfig struct {
	UsageResetIntervalMinutes int `mapstructure:"usage_reset_interval_minutes"`
	ExpiryIntervalHours       int `mapstructure:"expiry_interval_hours"`
}

type BusinessConfig struct {
	Timezone string `mapstructure:"timezone"`
}
