package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	Env         string
	PostgresUrl string
	JWTSecret   string
	UploadDir   string
	Moderators  []string

	// Reaction policy switches, see internal/reactions.Policy.
	NotifyPostAuthor     bool
	LegacyCommentCascade bool
}

func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		PostgresUrl:          getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:            getEnv("JWT_SECRET", "supersecretjwtkey"),
		UploadDir:            getEnv("UPLOAD_DIR", "./uploads"),
		Moderators:           splitList(getEnv("MODERATORS", "")),
		NotifyPostAuthor:     getEnv("NOTIFY_POST_AUTHOR", "") == "true",
		LegacyCommentCascade: getEnv("LEGACY_COMMENT_CASCADE", "") == "true",
	}
}

// IsModerator reports whether the username is in the moderator list.
func (c *Config) IsModerator(username string) bool {
	for _, m := range c.Moderators {
		if m == username {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
