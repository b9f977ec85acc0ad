package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Well-known message fields
const (
	FieldID        = "id"
	FieldText      = "text"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// ErrInvalidField is returned when a well-known field carries a value of the wrong type
var ErrInvalidField = errors.New("invalid field")

// Message is a single record held by the message store
type Message struct {
	ID        int
	Text      string
	CreatedAt *time.Time
	UpdatedAt *time.Time

	// Extra holds caller-supplied fields that are not part of the fixed schema
	Extra map[string]any
}

// Apply shallow-merges data onto the message. Fields present in data
// overwrite the message's fields; absent fields are retained. The id is
// owned by the store and is never taken from data.
func (m *Message) Apply(data Data) error {
	// Validate timestamps first so a failed merge leaves m untouched
	createdAt, hasCreated, err := timeField(data, FieldCreatedAt)
	if err != nil {
		return err
	}
	updatedAt, hasUpdated, err := timeField(data, FieldUpdatedAt)
	if err != nil {
		return err
	}

	for key, value := range data {
		switch key {
		case FieldID, FieldCreatedAt, FieldUpdatedAt:
			continue
		case FieldText:
			m.Text = textValue(value)
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = value
		}
	}

	if hasCreated {
		m.CreatedAt = createdAt
	}
	if hasUpdated {
		m.UpdatedAt = updatedAt
	}
	return nil
}

// Fields flattens the message into a field map, the shape callers see
func (m Message) Fields() Data {
	out := make(Data, len(m.Extra)+4)
	for k, v := range m.Extra {
		out[k] = v
	}
	out[FieldID] = m.ID
	out[FieldText] = m.Text
	if m.CreatedAt != nil {
		out[FieldCreatedAt] = *m.CreatedAt
	}
	if m.UpdatedAt != nil {
		out[FieldUpdatedAt] = *m.UpdatedAt
	}
	return out
}

// Clone returns a deep-enough copy: timestamps and Extra are not shared
func (m Message) Clone() Message {
	c := m
	if m.CreatedAt != nil {
		t := *m.CreatedAt
		c.CreatedAt = &t
	}
	if m.UpdatedAt != nil {
		t := *m.UpdatedAt
		c.UpdatedAt = &t
	}
	if m.Extra != nil {
		c.Extra = make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// MarshalJSON renders the flattened field map
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Fields())
}

// MarshalYAML implements yaml.Marshaler
func (m Message) MarshalYAML() (interface{}, error) {
	return map[string]any(m.Fields()), nil
}

func textValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// timeField reads a timestamp out of data. Accepts time.Time, *time.Time,
// RFC 3339 strings and nil (which clears the field).
func timeField(data Data, key string) (*time.Time, bool, error) {
	raw, ok := data[key]
	if !ok {
		return nil, false, nil
	}

	switch v := raw.(type) {
	case nil:
		return nil, true, nil
	case time.Time:
		return &v, true, nil
	case *time.Time:
		if v == nil {
			return nil, true, nil
		}
		t := *v
		return &t, true, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", ErrInvalidField, key, err)
		}
		return &t, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %s has type %T", ErrInvalidField, key, raw)
	}
}
