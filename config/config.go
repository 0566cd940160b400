package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	CorsOrigins string

	MongoURL string
	DBName   string

	JWTSecret         string
	JWTExpirationDays int

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioPhone      string

	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	OAuthSessionURL string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	expDays := 7
	if v := os.Getenv("JWT_EXPIRATION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid JWT_EXPIRATION_DAYS %q: %v", v, err)
		}
		expDays = n
	}

	return Config{
		ServerPort:  envOr("SERVER_PORT", ":8000"),
		CorsOrigins: envOr("CORS_ORIGINS", "*"),

		MongoURL: os.Getenv("MONGO_URL"),
		DBName:   os.Getenv("DB_NAME"),

		JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationDays: expDays,

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhone:      os.Getenv("TWILIO_PHONE_NUMBER"),

		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMBaseURL: envOr("LLM_BASE_URL", "https://api.openai.com"),
		LLMModel:   envOr("LLM_MODEL", "gpt-4o-mini"),

		OAuthSessionURL: envOr("OAUTH_SESSION_URL", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
