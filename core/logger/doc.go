// Package logger provides a structured logging facility based on Zap.
//
// New builds a production (json) or development (console) logger from Config, and
// WithRayID attaches the request ray id stored in Fiber locals so that every log line of
// a request can be correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	logger.WithRayID(log, c).Warn("lobby metadata malformed", zap.Error(err))
package logger
