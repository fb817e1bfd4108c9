package main

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the command line settings. Environment variables provide the
// defaults; flags override them.
type Config struct {
	Jobs     int    `validate:"min=1,max=64"`
	TokenExt string `validate:"required,startswith=.,excludes=/"`
	NoTokens bool
	Vars     bool

	Times   int `validate:"min=1,max=1000"`
	Trace   bool
	Dump    bool
	History string
}

// LoadConfig reads the IOL_* environment.
func LoadConfig() Config {
	var cfg Config
	cfg.Jobs = getEnvInt("IOL_JOBS", 4)
	cfg.TokenExt = getEnv("IOL_TOKEN_EXT", ".tkn")
	cfg.NoTokens = getEnvBool("IOL_NO_TOKENS", false)
	cfg.Vars = getEnvBool("IOL_VARS", false)
	cfg.Times = getEnvInt("IOL_TIMES", 1)
	cfg.Trace = getEnvBool("IOL_TRACE", false)
	cfg.Dump = getEnvBool("IOL_DUMP", false)
	cfg.History = getEnv("IOL_HISTORY", "")
	return cfg
}

var validate = validator.New()

// Validate checks the settings' ranges.
func (cfg Config) Validate() error { return validate.Struct(cfg) }

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return defaultValue
}
