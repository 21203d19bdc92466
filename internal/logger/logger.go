// Package logger wires a process-wide zap logger. Handlers report errors to
// clients as JSON; everything that happens outside a request (startup, the
// queue consumer, publish failures) goes through this logger.
package logger

import "go.uber.org/zap"

var l *zap.Logger

// Init builds the global logger. Call once at startup before any L() use.
func Init(env string) error {
	var (
		lg  *zap.Logger
		err error
	)
	if env == "prod" {
		lg, err = zap.NewProduction()
	} else {
		lg, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	l = lg
	return nil
}

// L returns the global logger. It panics when Init was never called, which
// surfaces wiring mistakes immediately instead of silently dropping logs.
func L() *zap.Logger {
	if l == nil {
		panic("logger.Init must be called before logger.L")
	}
	return l
}
