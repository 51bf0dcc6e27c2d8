package helpers

import "log/slog"

// LoggerOrDiscard returns l, or a logger that drops everything when l is nil.
func LoggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

func Logging(logger *slog.Logger, logType, message string, args ...any) {
	logger = LoggerOrDiscard(logger)

	switch logType {
	case "error":
		logger.Error(message, args...)
	case "debug":
		logger.Debug(message, args...)
	case "warn":
		logger.Warn(message, args...)
	default:
		logger.Info(message, args...)
	}
}
