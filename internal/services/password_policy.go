package services

import (
	"errors"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 40
	// bcrypt refuses longer input.
	MaxPasswordBytes = 72
)

var ErrWeakPassword = errors.New("weak password")

func ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	if length < MinPasswordLength || length > MaxPasswordLength {
		return ErrWeakPassword
	}
	if len(password) > MaxPasswordBytes {
		return ErrWeakPassword
	}
	return nil
}
