package api

import (
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/security"
)

func (handler *Handler) issueAccessToken(user *models.User) (string, error) {
	return security.IssueAccessToken(handler.secretKey, user.ID, handler.tokenTTL, handler.now())
}
