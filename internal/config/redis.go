package config

import (
	"fmt"
	"time"
)

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"MYFLIX_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"MYFLIX_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"MYFLIX_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"MYFLIX_REDIS_DB" env-default:"0"`
	PoolSize       int           `yaml:"pool_size" env:"MYFLIX_REDIS_POOL_SIZE" env-default:"10"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MYFLIX_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"MYFLIX_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"MYFLIX_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"MYFLIX_REDIS_DEFAULT_TTL" env-default:"10m"`
}

// GetAddress возвращает адрес Redis сервера.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
