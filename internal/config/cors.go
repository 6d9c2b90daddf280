package config

import "strings"

// CORSConfig содержит список разрешенных origin для CORS.
// Список задается явно при старте, а не глобальной переменной модуля.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"MYFLIX_CORS_ALLOWED_ORIGINS" env-default:"http://localhost:8080,http://localhost:1234,http://localhost:4200"`
}

// GetAllowedOrigins возвращает список разрешенных origin.
func (c *CORSConfig) GetAllowedOrigins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
