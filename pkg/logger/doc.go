// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so that log keys stay consistent across the
// module.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result with a context-aware handler that runs registered ContextExtractor
// callbacks on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "rangebench"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "run finished",
//	    logger.Duration(elapsed),
//	    logger.Count("queries", n),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. Discard returns a logger that drops everything and is the
// default for library types that accept an optional logger.
package logger
