// Package logger constructs log/slog loggers with a small functional-options
// surface: output format (text or JSON), minimum level, and destination
// writer.
//
// The library packages of this module do not log; logging belongs to the
// entry points. The CLI wires its --json and --verbose flags through this
// factory.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("phrase generated", "words", 12)
package logger
