package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"changethis":                                 {},
	"replace_with_at_least_32_random_characters": {},
}

type Settings struct {
	APIPrefix                string `env:"API_V1_STR,default=/api/v1"`
	ProjectName              string `env:"PROJECT_NAME,default=Habitual"`
	Domain                   string `env:"DOMAIN,default=localhost"`
	Environment              string `env:"ENVIRONMENT,default=development"`
	SQLiteFileName           string `env:"SQLITE_FILE_NAME,default=data/habitual.db"`
	SecretKey                string `env:"SECRET_KEY"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES,default=11520"`
	Port                     int    `env:"PORT,default=8080"`
	Timezone                 string `env:"TZ,default=UTC"`
	FirstSuperuser           string `env:"FIRST_SUPERUSER"`
	FirstSuperuserPassword   string `env:"FIRST_SUPERUSER_PASSWORD"`
}

// Load reads an optional dotenv file and decodes the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Settings, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	settings := Settings{}
	if err := envdecode.Decode(&settings); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Settings{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (settings Settings) Validate() error {
	switch settings.Environment {
	case EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction:
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, staging, production; got %q", settings.Environment)
	}

	if _, err := ResolveSecretKey(settings.SecretKey); err != nil {
		return err
	}
	if settings.Port < 1 || settings.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", settings.Port)
	}
	if settings.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", settings.AccessTokenExpireMinutes)
	}
	if !strings.HasPrefix(settings.APIPrefix, "/") {
		return fmt.Errorf("API_V1_STR must start with /, got %q", settings.APIPrefix)
	}
	if strings.TrimSpace(settings.SQLiteFileName) == "" {
		return errors.New("SQLITE_FILE_NAME is required")
	}
	if settings.FirstSuperuser != "" && settings.FirstSuperuserPassword == "" {
		return errors.New("FIRST_SUPERUSER_PASSWORD is required when FIRST_SUPERUSER is set")
	}
	return nil
}

func ResolveSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func (settings Settings) AccessTokenTTL() time.Duration {
	return time.Duration(settings.AccessTokenExpireMinutes) * time.Minute
}

func (settings Settings) ServerHost() string {
	if settings.Environment == EnvironmentDevelopment {
		return "http://" + settings.Domain
	}
	return "https://" + settings.Domain
}

func (settings Settings) ListenAddress() string {
	return fmt.Sprintf(":%d", settings.Port)
}

func (settings Settings) Location() *time.Location {
	location, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
