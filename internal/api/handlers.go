package api

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAccessTokenTTL = 8 * 24 * time.Hour
	loginAttemptLimit     = 10
	loginAttemptWindow    = 15 * time.Minute
)

// LoginObserver receives the outcome of every login attempt.
type LoginObserver interface {
	ObserveLogin(result string)
}

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	tokenTTL     time.Duration
	logger       logrus.FieldLogger
	validate     *validator.Validate
	loginLimiter *attemptLimiter
	logins       LoginObserver
	now          func() time.Time

	repositories  *db.Repositories
	authService   *services.AuthService
	userService   *services.UserService
	habitService  *services.HabitService
	recordService *services.RecordService
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration, logger logrus.FieldLogger) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if strings.TrimSpace(secretKey) == "" {
		return nil, errors.New("secret key is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultAccessTokenTTL
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		tokenTTL:     tokenTTL,
		logger:       logger,
		validate:     newInputValidator(),
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
		now:          time.Now,
	}
	return handler.withDependencies(database), nil
}

// ObserveLogins routes login outcomes to observer, usually the metrics collector.
func (handler *Handler) ObserveLogins(observer LoginObserver) {
	handler.logins = observer
}

func (handler *Handler) observeLogin(result string) {
	if handler.logins != nil {
		handler.logins.ObserveLogin(result)
	}
}
