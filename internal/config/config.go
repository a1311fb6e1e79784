package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envOutput   = "TABKIT_OUTPUT"
	envLevel    = "TABKIT_LOG_LEVEL"
	envLogFile  = "TABKIT_LOG_FILE"
	envComma    = "TABKIT_COMMA"
	envWordList = "TABKIT_WORDLIST"
)

type Config struct {
	Output   string
	LogLevel string
	LogFile  string
	Comma    byte
	WordList string
}

func Default() Config {
	return Config{
		Output:   "report.xlsx",
		LogLevel: "info",
		Comma:    ',',
	}
}

// Load reads the given env files, .env when none is given, then builds the
// configuration from the environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = append(files, ".env")
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Default(), err
		}
	}
	cfg := Default()
	cfg.Output = getEnvString(envOutput, cfg.Output)
	cfg.LogLevel = getEnvString(envLevel, cfg.LogLevel)
	cfg.LogFile = getEnvString(envLogFile, cfg.LogFile)
	cfg.WordList = getEnvString(envWordList, cfg.WordList)
	if str := getEnvString(envComma, ""); len(str) == 1 {
		cfg.Comma = str[0]
	}
	return cfg, nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
