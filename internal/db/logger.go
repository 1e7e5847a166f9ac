package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm/logger"
)

type slogWriter struct {
	l *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.l.Warn("gorm", "detail", fmt.Sprintf(format, args...))
}

// NewGormLogger routes gorm's warnings, slow queries and SQL errors into slog
// without ANSI colors. Missing rows are not logged; callers map them to 404.
func NewGormLogger(l *slog.Logger) logger.Interface {
	if l == nil {
		l = slog.Default()
	}
	return logger.New(slogWriter{l: l.With("component", "gorm")}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
		Colorful:                  false,
	})
}
