// Package logger provides structured logging utilities built on Go's standard
// slog package: a factory with environment presets and nil-safe attribute
// helpers for the session layer's common logging scenarios.
//
// Attribute helpers use the empty Attr pattern for nil safety, so
// log.Info("msg", logger.Error(err)) needs no explicit nil check.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("sessionguard"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("backend connected",
//		logger.Component("cache"),
//		logger.Duration(elapsed),
//	)
//
// Production preset emits JSON at Info level:
//
//	log := logger.New(logger.WithProduction("sessionguard"))
package logger
