package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr        string
	GinMode        string
	DBDSN          string
	JWTSecret      string
	FirebaseAPIKey string
	FixturesDir    string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":4000"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	fixturesDir := strings.TrimSpace(os.Getenv("FIXTURES_DIR"))
	if fixturesDir == "" {
		fixturesDir = "data/fixtures"
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        ginMode,
		DBDSN:          strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSecret:      secret,
		FirebaseAPIKey: strings.TrimSpace(os.Getenv("FIREBASE_API_KEY")),
		FixturesDir:    fixturesDir,
	}
}
