package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/habitual/internal/config"
)

const version = "v0.1.0"

var cli struct {
	Version kong.VersionFlag
	EnvFile string `help:"Optional dotenv file loaded before reading the environment." default:".env" env:"ENV_FILE" type:"path"`

	Serve         serveCmd         `cmd:"" default:"1" help:"Run the HTTP API server."`
	CreateUser    createUserCmd    `cmd:"" help:"Create a user account."`
	ResetPassword resetPasswordCmd `cmd:"" help:"Replace a user's password with a random temporary one."`
}

// commandEnv is what every command receives from kong.
type commandEnv struct {
	settings config.Settings
	logger   *logrus.Logger
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("habitual"),
		kong.Description("Habit tracking HTTP API"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	settings, err := config.Load(cli.EnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(settings)
	if err := ctx.Run(&commandEnv{settings: settings, logger: logger}); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
