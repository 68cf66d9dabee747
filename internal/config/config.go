package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackTeamID        string
	DatabasePath       string
	Port               string
	LogLevel           string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackTeamID:        getEnv("SLACK_TEAM_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./shiftbot.db"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
