package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Поддерживаемые драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Mongo    MongoConfig    `toml:"mongo"`
	Kafka    KafkaConfig    `toml:"kafka"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки хранилища аллокаций
// Driver выбирает бэкенд: postgres (по умолчанию) или mongo
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrationsPath  string `toml:"migrations_path"`
}

// MongoConfig настройки mongo-бэкенда (используется при driver = "mongo")
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// KafkaConfig настройки публикации событий календаря
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Database.Driver != DriverPostgres && cfg.Database.Driver != DriverMongo {
		return nil, fmt.Errorf("config: unsupported database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// DSN собирает строку подключения к PostgreSQL
// Пароль может быть переопределён переменной окружения DB_PASSWORD
// (секреты не хранятся в config.toml, подкладываются через .env)
func (c *DatabaseConfig) DSN() string {
	password := c.Password
	if env := os.Getenv("DB_PASSWORD"); env != "" {
		password = env
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, password, c.DBName, sslMode)
}
