package middleware

import (
	"context"
	"time"

	"switchboard/internal/hook"
)

// Clock returns the current time
type Clock func() time.Time

// SetTimestamp returns a hook that sets data[field] to the current time
func SetTimestamp(field string) hook.Func {
	return SetTimestampWith(field, time.Now)
}

// SetTimestampWith is SetTimestamp with an explicit clock
func SetTimestampWith(field string, now Clock) hook.Func {
	return func(ctx context.Context, hc hook.Context) (hook.Context, error) {
		hc.Data = hc.Data.With(field, now().UTC())
		return hc, nil
	}
}
