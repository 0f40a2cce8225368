package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"SurveyBot/model"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	BotToken string

	GoogleServiceAccountFile string
	GoogleSheetID            string
	GoogleWorksheetName      string // empty means the first sheet

	LocalExcelFile string // empty disables the local backup

	FirebaseDatabaseURL   string // empty disables the Firebase mirror
	FirebaseResponsesPath string

	LogLevel  string
	LogFormat string // "json" or "console"
}

// Load reads the configuration from the environment, after loading a .env file if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	botToken, err := requireEnv("TELEGRAM_BOT_TOKEN")
	if err != nil {
		return nil, err
	}
	serviceAccount, err := requireEnv("GOOGLE_SERVICE_ACCOUNT_FILE")
	if err != nil {
		return nil, err
	}
	sheetID, err := requireEnv("GOOGLE_SHEET_ID")
	if err != nil {
		return nil, err
	}

	return &Config{
		BotToken:                 botToken,
		GoogleServiceAccountFile: expandHome(serviceAccount),
		GoogleSheetID:            sheetID,
		GoogleWorksheetName:      os.Getenv("GOOGLE_WORKSHEET_NAME"),
		LocalExcelFile:           expandHome(os.Getenv("LOCAL_EXCEL_FILE")),
		FirebaseDatabaseURL:      os.Getenv("FIREBASE_DATABASE_URL"),
		FirebaseResponsesPath:    getEnv("FIREBASE_RESPONSES_PATH", "survey_responses"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "json"),
	}, nil
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s", model.ErrMissingConfig, key)
	}
	return v, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
