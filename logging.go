package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
)

func NewLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = atomicLevel
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}

// Recover logs a panic with its stack and exits. Deferred at the top of run.
func Recover(logger *zap.Logger) {
	if r := recover(); r != nil {
		HandlePanic(logger, r)
	}
}

func HandlePanic(logger *zap.Logger, panic any) {
	defer os.Exit(1)

	buf := make([]byte, 100000)
	n := runtime.Stack(buf, false)
	logger.Error("panic",
		zap.Any("value", panic),
		zap.ByteString("stack", buf[:n]))
	_ = logger.Sync()
}
