// Package log wraps zap with context-aware helpers so every log line carries
// the request correlation id. The process-wide logger is initialized once by
// the bootstrap and read by everything else.
package log

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type initOptions struct {
	level      zapcore.Level
	env        string
	withCaller bool
	callerSkip int
}

type InitOption func(*initOptions)

func WithLevel(level string) InitOption {
	return func(o *initOptions) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithEnv(env string) InitOption {
	return func(o *initOptions) { o.env = env }
}

func WithCaller(skip int) InitOption {
	return func(o *initOptions) {
		o.withCaller = true
		o.callerSkip = skip
	}
}

// Init builds the process logger. Local environments get the development
// console encoder, everything else logs JSON.
func Init(appName string, opts ...InitOption) error {
	fOpts := &initOptions{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(fOpts)
	}

	cfg := zap.NewProductionConfig()
	if fOpts.env == "local" || fOpts.env == "" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(fOpts.level)

	zapOpts := []zap.Option{zap.Fields(zap.String("app", appName))}
	if fOpts.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(fOpts.callerSkip))
	}

	l, err := cfg.Build(zapOpts...)
	if err != nil {
		return err
	}

	mu.Lock()
	logger = l
	mu.Unlock()
	return nil
}

// InitForTest swaps in a no-op logger so package tests stay silent.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func Sync() {
	_ = get().Sync()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if id := CorrelationID(ctx); id != "" {
		fields = append(fields, zap.String("correlation_id", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, withCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	get().Panic(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	get().Debug(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Infof(ctx context.Context, format string, args ...any) {
	get().Info(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	get().Warn(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	get().Error(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	get().Fatal(fmt.Sprintf(format, args...), withCtx(ctx, nil)...)
}

// Field constructors, re-exported so callers do not import zap directly.

func String(key, val string) Field        { return zap.String(key, val) }
func Int(key string, val int) Field       { return zap.Int(key, val) }
func Int32(key string, val int32) Field   { return zap.Int32(key, val) }
func Int64(key string, val int64) Field   { return zap.Int64(key, val) }
func Uint64(key string, val uint64) Field { return zap.Uint64(key, val) }
func Bool(key string, val bool) Field     { return zap.Bool(key, val) }
func Any(key string, val any) Field       { return zap.Any(key, val) }
func Err(err error) Field                 { return zap.Error(err) }

func Time(key string, val time.Time) Field         { return zap.Time(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
