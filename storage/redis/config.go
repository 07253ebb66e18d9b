package redis

import "os"

type Config struct {
	Address   string
	Password  string
	Namespace string
}

func GetConfig() Config {
	return Config{
		Address:   getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password:  getEnv("REDIS_PASSWORD", ""),
		Namespace: getEnv("KEEPSAKE_NAMESPACE", "keepsake"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
