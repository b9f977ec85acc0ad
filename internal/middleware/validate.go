package middleware

import (
	"context"
	"strings"

	"switchboard/internal/apperror"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
)

// Validate requires data.text to be a non-blank string. On success the
// payload is replaced by {text: trimmed}; any other caller fields are dropped.
func Validate(ctx context.Context, hc hook.Context) (hook.Context, error) {
	if raw, ok := hc.Data[domain.FieldText]; !ok || raw == nil {
		return hc, invalidText("Message text is required")
	}

	text, ok := hc.Data.GetString(domain.FieldText)
	if !ok {
		return hc, invalidText("Message text must be a string")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return hc, invalidText("Message text can not be empty")
	}

	hc.Data = domain.Data{domain.FieldText: text}
	return hc, nil
}

func invalidText(msg string) error {
	return apperror.BadRequest("%s", msg).
		WithData(map[string]any{"field": domain.FieldText})
}
