// Package output writes evaluation results to a CI output sink.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Sink appends key=value pairs to a CI output file, following the
// GITHUB_OUTPUT convention. When no file is configured or the file cannot
// be opened, values fall back to the legacy "::set-output" workflow
// command on the fallback writer instead of failing the run.
type Sink struct {
	path     string
	fallback io.Writer
}

// NewSink creates a sink writing to the file at path. An empty path means
// every value goes to the fallback writer (os.Stdout when w is nil).
func NewSink(path string, w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}

	return &Sink{path: path, fallback: w}
}

// Set emits one output value.
func (s *Sink) Set(name, value string) error {
	if s.path == "" {
		return s.setFallback(name, value)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return s.setFallback(name, value)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "%s=%s\n", name, value); err != nil {
		return fmt.Errorf("write output %s: %w", name, err)
	}

	return nil
}

// SetBool emits one boolean output value.
func (s *Sink) SetBool(name string, value bool) error {
	return s.Set(name, strconv.FormatBool(value))
}

// SetJSON emits one output value encoded as compact JSON.
func (s *Sink) SetJSON(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode output %s: %w", name, err)
	}

	return s.Set(name, string(data))
}

func (s *Sink) setFallback(name, value string) error {
	if _, err := fmt.Fprintf(s.fallback, "::set-output name=%s::%s\n", name, value); err != nil {
		return fmt.Errorf("write output %s: %w", name, err)
	}

	return nil
}
