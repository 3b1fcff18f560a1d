// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The calculator talks to the user on stdout, so every configuration here
// writes to stderr unless told otherwise.
//
// Example Usage:
//
//	logger, err := logging.NewOrDefault(logging.Config{Level: "info", Output: path})
//	logger.Info("Session started", zap.String("session_id", sid))
//	logger.Warn("Module failed", zap.Error(err))
package logging
