package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/record-store/pkg/ctxmeta"
)

// ZapLogger — обёртка над zap, реализующая ports.Logger.
// К каждой строке добавляется request_id из контекста (если он там есть).
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — конструктор; isProd переключает prod/dev конфигурацию zap.
// Возвращает логгер и функцию сброса буферов (вызывать при остановке).
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		base *zap.Logger
		err  error
	)

	if isProd {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	l := &ZapLogger{base: base, sugar: base.Sugar()}
	cleanup := func() error { return l.base.Sync() }
	return l, cleanup, nil
}

// withMeta — дополняет sugar-логгер метаданными запроса из контекста.
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	return s
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

// Base — доступ к базовому *zap.Logger для интеграций.
func (z *ZapLogger) Base() *zap.Logger { return z.base }
