package scheduler

import (
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// zapLogger routes gocron's key/value logs to zap.
type zapLogger struct {
	log *zap.SugaredLogger
}

func newLogger(log *zap.SugaredLogger) gocron.Logger {
	return &zapLogger{log: log.Named("gocron")}
}

func (l *zapLogger) Debug(msg string, args ...any) { l.log.Debugw(msg, args...) }
func (l *zapLogger) Info(msg string, args ...any)  { l.log.Infow(msg, args...) }
func (l *zapLogger) Warn(msg string, args ...any)  { l.log.Warnw(msg, args...) }
func (l *zapLogger) Error(msg string, args ...any) { l.log.Errorw(msg, args...) }
