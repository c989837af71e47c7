package main

import (
	"fmt"
	"os"
	"time"

	clicmd "github.com/terraincognita07/habitual/internal/cli"
	"github.com/terraincognita07/habitual/internal/db"
	"gorm.io/gorm"
)

type serveCmd struct{}

func (cmd *serveCmd) Run(rt *commandEnv) error {
	time.Local = rt.settings.Location()

	database, err := openDatabase(rt)
	if err != nil {
		return err
	}
	return runServer(rt, database)
}

type createUserCmd struct {
	Email    string `required:"" help:"Email address of the new user."`
	Password string `help:"Password; prompted without echo when omitted."`
	Admin    bool   `help:"Grant administrator privileges."`
}

func (cmd *createUserCmd) Run(rt *commandEnv) error {
	database, err := openDatabase(rt)
	if err != nil {
		return err
	}
	return clicmd.RunCreateUserCommand(database, clicmd.CreateUserOptions{
		Email:    cmd.Email,
		Password: cmd.Password,
		Admin:    cmd.Admin,
	}, os.Stdin, os.Stdout)
}

type resetPasswordCmd struct {
	Email string `required:"" help:"Email address of the user to reset."`
}

func (cmd *resetPasswordCmd) Run(rt *commandEnv) error {
	database, err := openDatabase(rt)
	if err != nil {
		return err
	}
	return clicmd.RunResetPasswordCommand(database, cmd.Email, os.Stdout)
}

func openDatabase(rt *commandEnv) (*gorm.DB, error) {
	database, err := db.OpenSQLite(rt.settings.SQLiteFileName, rt.logger.WithField("component", "gorm"))
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, nil
}
