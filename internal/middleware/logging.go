package middleware

import (
	"context"

	"github.com/rs/zerolog"

	"switchboard/internal/apperror"
	"switchboard/internal/hook"
)

// Logging returns hooks that log every completed and failed call
func Logging(logger zerolog.Logger) hook.Set {
	return hook.Set{
		After: map[hook.Method][]hook.Func{
			hook.MethodAll: {logCompleted(logger)},
		},
		Error: map[hook.Method][]hook.ErrorFunc{
			hook.MethodAll: {logFailed(logger)},
		},
	}
}

func logCompleted(logger zerolog.Logger) hook.Func {
	return func(ctx context.Context, hc hook.Context) (hook.Context, error) {
		logger.Debug().
			Str("call_id", hc.CallID).
			Str("path", hc.Path).
			Str("method", string(hc.Method)).
			Str("id", hc.ID).
			Msg("call completed")
		return hc, nil
	}
}

func logFailed(logger zerolog.Logger) hook.ErrorFunc {
	return func(ctx context.Context, hc hook.Context) {
		appErr := apperror.Convert(hc.Err)

		// Client errors are expected traffic; only internal failures are errors
		event := logger.Warn()
		if appErr.Kind == apperror.KindGeneral {
			event = logger.Error()
		}

		event.
			Str("call_id", hc.CallID).
			Str("path", hc.Path).
			Str("method", string(hc.Method)).
			Str("kind", string(appErr.Kind)).
			Int("code", appErr.Code()).
			Err(hc.Err).
			Msg("call failed")
	}
}
