package core

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/ib-77/tryto/pkg/try"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	LoggerOptionKey OptionKey = "logger"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the worker count stored in ctx, defaultMaxWorkers
// when none is set. A non-positive default means runtime.NumCPU.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	if defaultMaxWorkers > 0 {
		return defaultMaxWorkers
	}
	return runtime.NumCPU()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// LoggerFrom returns the logger stored in ctx, or the try package logger.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerOptionKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return try.Logger()
}
