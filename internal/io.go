package typedpath

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mtth/typedpath/internal/except"
)

const (
	logDataKey  = "data"
	logFileName = "typedpath.log"
)

// logFile returns the path logs are appended to. $LOGS_DIRECTORY takes precedence over the XDG
// state directory.
func logFile() (string, error) {
	if dp, ok := os.LookupEnv("LOGS_DIRECTORY"); ok {
		return filepath.Join(dp, logFileName), nil
	}
	return xdg.StateFile(filepath.Join("typedpath", logFileName))
}

// SetupLogging installs a JSON logger as default, writing to the log file or standard error if it
// can't be opened. Call the returned function to release the file.
func SetupLogging(level slog.Leveler) func() {
	var errs []error
	var writer io.Writer = os.Stderr
	release := func() {}

	if fp, err := logFile(); err != nil {
		errs = append(errs, err)
	} else if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		errs = append(errs, err)
	} else {
		writer = file
		release = func() { file.Close() }
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
	return release
}

func dataAttrs(attrs ...slog.Attr) slog.Attr {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = any(attr)
	}
	return slog.Group(logDataKey, args...)
}
