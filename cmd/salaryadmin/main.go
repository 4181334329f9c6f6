// Command salaryadmin manages an employee's salary structure and components
// through the REST API. Every subcommand issues independent requests; a
// failed request is logged and the remaining ones still run.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	cmd := newRootCommand(logger, os.Stdout)
	if err := cmd.Execute(); err != nil {
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
