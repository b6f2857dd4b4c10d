package llogs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/StevenGabule/portfolio/metal/env"
)

// FilesLogs writes the process logs to a file named after the current date
// and installs it as the default slog logger.
type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
	env    *env.Environment
}

func MakeFilesLogs(env *env.Environment) (Driver, error) {
	manager := FilesLogs{env: env}
	manager.path = manager.DefaultPath()

	if err := os.MkdirAll(filepath.Dir(manager.path), 0o755); err != nil {
		return FilesLogs{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	resource, err := os.OpenFile(manager.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return FilesLogs{}, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(resource, &slog.HandlerOptions{
		Level: env.Logs.SlogLevel(),
	}))

	slog.SetDefault(logger)

	manager.file = resource
	manager.logger = logger

	return manager, nil
}

// DefaultPath fills the %s placeholder of the configured directory pattern
// with today's date, e.g. ./storage/logs/logs_%s.log.
func (manager FilesLogs) DefaultPath() string {
	logs := manager.env.Logs

	return fmt.Sprintf(logs.Dir, time.Now().UTC().Format(logs.DateFormat))
}

func (manager FilesLogs) Path() string {
	return manager.path
}

func (manager FilesLogs) Close() bool {
	if manager.file == nil {
		return false
	}

	if err := manager.file.Close(); err != nil {
		manager.logger.Error("error closing file: " + err.Error())

		return false
	}

	return true
}
