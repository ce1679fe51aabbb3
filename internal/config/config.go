package config

import (
	"os"
	"strconv"
)

// Defaults match the spreadsheet this dashboard was built for.
const (
	DefaultExcelPath = "CONTROLE DE PROCESSOS SECOM.xlsx"
	DefaultSheetName = "CONTROLE DE PROCESSOS - GERAL"
)

// Config holds everything the dashboard reads from the environment.
type Config struct {
	ExcelPath    string
	SheetName    string
	Port         string
	DBPath       string
	TopCampaigns int
}

// Load reads configuration from environment variables, falling back to
// defaults. Nothing here is required: a bare environment yields a working
// local setup.
func Load() *Config {
	return &Config{
		ExcelPath:    getEnv("EXCEL_PATH", DefaultExcelPath),
		SheetName:    getEnv("SHEET_NAME", DefaultSheetName),
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "dashboard.db"),
		TopCampaigns: getEnvInt("TOP_CAMPAIGNS", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
