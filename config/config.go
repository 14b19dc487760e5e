package config

import (
	"os"
	"time"
)

type Config struct {
	Port            string
	Env             string
	JWTSecret       string
	RedisURL        string
	CartTTL         time.Duration
	SnapshotBackend string // "redis", "mongo", "dynamo" or "" (seed only)
	MongoURI        string
	MongoDatabase   string
	AWSRegion       string
	AWSEndpoint     string
	DynamoTable     string
	KafkaBrokers    string
	KafkaTopic      string
	GeminiAPIKey    string
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", "lumina-dev-secret"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:         getDuration("CART_TTL", time.Hour*24),
		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", ""),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "lumina"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		AWSEndpoint:     getEnv("AWS_ENDPOINT", ""),
		DynamoTable:     getEnv("DYNAMO_TABLE", "lumina-snapshots"),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "sale.recorded"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
