package logger

import "go.uber.org/zap"

// NewLogger builds the shared application logger. It writes to stdout and
// to the local log file so the TUI client can run with a clean screen
// while still keeping a trace on disk.
func NewLogger() *zap.Logger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout", "./logs/app.log"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}

// NewFileLogger builds a logger that writes only to the given file.
// The board TUI owns the terminal, so its logs must stay off stdout.
func NewFileLogger(path string) *zap.Logger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
