package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	UploadsDir  string
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=ecommerce port=5432 sslmode=disable"),
		RedisAddr:   os.Getenv("REDIS_ADDR"), // empty disables the product cache
		JWTSecret:   JWTSecret(),
		UploadsDir:  getenv("UPLOADS_DIR", "./uploads"),
	}
}

// JWTSecret is read in two places (token issue and the auth
// middleware); keeping it here guarantees they agree.
func JWTSecret() string {
	return getenv("JWT_SECRET", "change-me")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
