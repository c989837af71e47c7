package services

import "errors"

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

var ErrInvalidPagination = errors.New("invalid pagination")

func ValidatePagination(skip int, limit int) error {
	if skip < 0 || limit < 1 || limit > MaxPageLimit {
		return ErrInvalidPagination
	}
	return nil
}
