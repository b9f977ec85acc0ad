package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/apperror"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    domain.Data
		wantErr bool
		want    domain.Data
	}{
		{name: "missing text", data: domain.Data{}, wantErr: true},
		{name: "nil data", data: nil, wantErr: true},
		{name: "nil text", data: domain.Data{"text": nil}, wantErr: true},
		{name: "non-string text", data: domain.Data{"text": 42}, wantErr: true},
		{name: "empty text", data: domain.Data{"text": ""}, wantErr: true},
		{name: "whitespace text", data: domain.Data{"text": "  \t "}, wantErr: true},
		{name: "plain text", data: domain.Data{"text": "hello"}, want: domain.Data{"text": "hello"}},
		{name: "trims text", data: domain.Data{"text": "  hello  "}, want: domain.Data{"text": "hello"}},
		{name: "drops extra fields", data: domain.Data{"text": "hi", "author": "ada"}, want: domain.Data{"text": "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc, err := Validate(context.Background(), hook.Context{Data: tt.data})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperror.ErrBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, hc.Data)
		})
	}
}

func TestSetTimestamp(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	h := SetTimestampWith(domain.FieldCreatedAt, func() time.Time { return fixed })

	input := domain.Data{"text": "hi"}
	hc, err := h(context.Background(), hook.Context{Data: input})
	require.NoError(t, err)

	assert.Equal(t, fixed.UTC(), hc.Data[domain.FieldCreatedAt])
	assert.Equal(t, "hi", hc.Data["text"])
	assert.NotContains(t, input, domain.FieldCreatedAt)
}

func TestSetTimestampUsesWallClock(t *testing.T) {
	before := time.Now().UTC()
	hc, err := SetTimestamp(domain.FieldUpdatedAt)(context.Background(), hook.Context{})
	require.NoError(t, err)

	stamped, ok := hc.Data[domain.FieldUpdatedAt].(time.Time)
	require.True(t, ok)
	assert.False(t, stamped.Before(before))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	set := Logging(logger)

	r := hook.NewRegistry()
	r.Register(set)

	_, err := r.Run(context.Background(), hook.Context{Path: "messages", Method: hook.MethodGet, ID: "1"},
		func(ctx context.Context, hc hook.Context) (any, error) { return "ok", nil })
	require.NoError(t, err)

	_, err = r.Run(context.Background(), hook.Context{Path: "messages", Method: hook.MethodGet, ID: "9"},
		func(ctx context.Context, hc hook.Context) (any, error) {
			return nil, apperror.NotFound("Message with id 9 not found")
		})
	require.Error(t, err)

	_, err = r.Run(context.Background(), hook.Context{Path: "messages", Method: hook.MethodFind},
		func(ctx context.Context, hc hook.Context) (any, error) { return nil, errors.New("disk on fire") })
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entries []map[string]any
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "call completed", entries[0]["message"])
	assert.Equal(t, "messages", entries[0]["path"])

	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, "NotFound", entries[1]["kind"])
	assert.Equal(t, float64(404), entries[1]["code"])

	assert.Equal(t, "error", entries[2]["level"])
	assert.Equal(t, "GeneralError", entries[2]["kind"])
}
