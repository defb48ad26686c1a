package testutil

import (
	"testing"

	"github.com/MGTheTrain/hbnb-storage/internal/pkg/config"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/logger"
)

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// SetupTestLogger returns a debug logger that writes through t.Log.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewWriterLogger(testWriter{t: t}, config.LogLevelDebug, false)
}
