package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/expense-tracker/cmd/add"
	"fjacquet/expense-tracker/cmd/daily"
	"fjacquet/expense-tracker/cmd/dashboard"
	"fjacquet/expense-tracker/cmd/list"
	"fjacquet/expense-tracker/cmd/remove"
	"fjacquet/expense-tracker/cmd/report"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	_, _ = config.LoadEnv()

	// 2. Configure the global log level before any logging happens
	configureLogLevelDirectly()

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(daily.Cmd)
	root.Cmd.AddCommand(dashboard.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
