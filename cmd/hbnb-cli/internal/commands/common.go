package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/hbnb-storage/internal/pkg/config"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/logger"
)

// setupLogger logs to w (stderr in main) so that stdout only carries command output.
func setupLogger(w io.Writer, level string) (logger.Logger, error) {
	settings := config.DefaultLoggerSettings()
	if level != "" {
		settings.LogLevel = level
	}

	log, err := logger.New(&settings, w)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}
