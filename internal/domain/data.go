package domain

// Data is the untyped payload passed to create and patch and threaded
// through the hook pipeline
type Data map[string]any

// Clone returns a shallow copy of d
func (d Data) Clone() Data {
	if d == nil {
		return nil
	}
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// With returns a copy of d with key set to value
func (d Data) With(key string, value any) Data {
	out := d.Clone()
	if out == nil {
		out = make(Data, 1)
	}
	out[key] = value
	return out
}

// GetString returns the value at key if it is a string
func (d Data) GetString(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
