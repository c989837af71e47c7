package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/services"
	"gorm.io/gorm"
)

type CreateUserOptions struct {
	Email    string
	Password string
	Admin    bool
}

type passwordReader func(stdin *os.File) ([]byte, error)

// RunCreateUserCommand creates an active user. When no password is given it
// is read twice from stdin with terminal echo disabled.
func RunCreateUserCommand(database *gorm.DB, options CreateUserOptions, stdin *os.File, out io.Writer) error {
	return runCreateUser(database, options, stdin, out, readPasswordNoEcho)
}

func runCreateUser(database *gorm.DB, options CreateUserOptions, stdin *os.File, out io.Writer, read passwordReader) error {
	password := options.Password
	if password == "" {
		prompted, err := promptNewPassword(stdin, out, read)
		if err != nil {
			return err
		}
		password = prompted
	}

	accounts := services.NewUserService(db.NewUserRepository(database))
	user, err := accounts.CreateUser(services.NewUser{
		Email:    options.Email,
		Password: password,
		IsActive: true,
		IsAdmin:  options.Admin,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(out, "Created %s %s (%s)\n", role, user.Email, user.ID)
	return nil
}

func promptNewPassword(stdin *os.File, out io.Writer, read passwordReader) (string, error) {
	fmt.Fprint(out, "Password: ")
	first, err := read(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(out, "Confirm password: ")
	second, err := read(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password confirmation: %w", err)
	}

	if !bytes.Equal(first, second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) == 0 {
		return "", errors.New("password is required")
	}
	return string(first), nil
}
