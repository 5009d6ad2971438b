// Package logging builds the slog loggers used by invisink components.
//
// The codec itself never logs. The scanner accepts a *slog.Logger and reports,
// at debug level, the invisible fragments and windows it skips:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	s := watermark.NewScanner(codec, watermark.WithLogger(logger))
//
// When no logger is configured, components use Nop.
package logging
