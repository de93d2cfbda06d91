// Package logger builds configured slog.Logger instances with sane defaults
// for this kit: JSON at info level for production, text at debug level for
// development.
//
//	log := logger.New(
//	    logger.WithDevelopment("shopkit"),
//	)
//
//	sessions := session.New(store, session.WithLogger(log.With(logger.Component("session"))))
//
// Attribute helpers keep key names uniform across packages (error,
// component, key).
package logger
