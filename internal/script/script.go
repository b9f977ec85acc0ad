// Package script loads and runs YAML scripts of service calls.
//
// A script is a list of steps, each naming an operation and, optionally,
// the service path, record id, data and params:
//
//	steps:
//	  - op: create
//	    data: {text: First Message}
//	  - op: remove
//	    id: "1"
//	  - op: get
//	    service: todos
//	    id: dishes
package script

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"switchboard/internal/codec"
	"switchboard/internal/domain"
	"switchboard/internal/hook"
)

// Script is an ordered list of service calls
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step is one service call
type Step struct {
	// Op is the method to call: find, get, create, patch or remove
	Op hook.Method `yaml:"op"`

	// Service is the service path. Empty means messages.
	Service string      `yaml:"service,omitempty"`
	ID      string      `yaml:"id,omitempty"`
	Data    domain.Data `yaml:"data,omitempty"`
	Params  hook.Params `yaml:"params,omitempty"`
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a script and checks every step. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	if err := codec.NewYAMLCodec().Decode(r, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step names a known method and carries the
// arguments that method needs
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script has no steps")
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case hook.MethodFind, hook.MethodCreate:
	case hook.MethodGet, hook.MethodPatch, hook.MethodRemove:
		if s.ID == "" {
			return fmt.Errorf("%s requires an id", s.Op)
		}
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}
