// Package logger builds configured *slog.Logger instances for the CRM
// client packages.
//
// The factory keeps the two deployment profiles a small admin client
// needs: human-readable text logs at debug level for development, and
// JSON logs at info level for production log aggregation. Individual
// packages accept a *slog.Logger through their options and fall back to
// a discard logger when none is supplied.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithJSONFormat(),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithService("cipmn-crm"),
//	)
package logger
