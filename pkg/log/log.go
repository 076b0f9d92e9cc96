package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != ModeProduction {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// withCtx attaches request-scoped fields carried in ctx.
func (l *zapLogger) withCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok && rid != "" {
		return l.sugar.With("request_id", rid)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.withCtx(ctx).Debug(arg...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.withCtx(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.withCtx(ctx).Info(arg...) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.withCtx(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.withCtx(ctx).Warn(arg...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.withCtx(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.withCtx(ctx).Error(arg...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.withCtx(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.withCtx(ctx).DPanic(arg...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.withCtx(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.withCtx(ctx).Panic(arg...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.withCtx(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.withCtx(ctx).Fatal(arg...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.withCtx(ctx).Fatalf(template, arg...)
}
