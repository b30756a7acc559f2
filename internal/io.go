package pathutils

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gemini-testing/path-utils/internal/except"
)

const logFileName = "pathutils.log"

var lookupEnv = os.LookupEnv

// NewLogger returns a JSON logger appending to $LOGS_DIRECTORY/pathutils.log if the variable is
// set, and to the XDG state file otherwise. It falls back to stderr when neither can be opened.
func NewLogger(level slog.Level) *slog.Logger {
	var errs []error

	var fp string
	if dp, ok := lookupEnv("LOGS_DIRECTORY"); ok {
		fp = filepath.Join(dp, logFileName)
	} else {
		var err error
		fp, err = xdg.StateFile("pathutils/log")
		if err != nil {
			errs = append(errs, err)
			fp = logFileName
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stderr
	}

	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))
	if len(errs) > 0 {
		logger.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
	return logger
}
