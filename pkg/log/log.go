package log

import "context"

// Logger is the logging interface used across the service.
// All methods accept a context as first parameter so request-scoped
// fields can be attached by implementations.
type Logger interface {
	Debug(ctx context.Context, msg string)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, msg string)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, msg string)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, msg string)
	Errorf(ctx context.Context, format string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}
