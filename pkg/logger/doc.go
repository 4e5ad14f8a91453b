// Package logger builds log/slog loggers for the localefixture tooling.
//
// Loggers write to stderr by default so that command output on stdout can be
// piped into other tools. Level and format come from Config:
//
//	log, err := logger.NewWithConfig(logger.Config{Level: "debug", Format: "json"},
//		logger.CommandExtractor,
//	)
//
// # Context Extractors
//
// A ContextExtractor turns a context value into a log attribute. Extractors
// run on every log call through LogHandlerDecorator, which wraps any
// slog.Handler:
//
//	ctx := logger.WithCommand(ctx, "check")
//	log.InfoContext(ctx, "snapshot valid")
//	// time=... level=INFO msg="snapshot valid" command=check
//
// Use NewNope when logging is not configured.
package logger
