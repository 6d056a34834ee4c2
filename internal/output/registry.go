package output

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps format names to Formatters, enabling pluggable output
// formats for the list and report commands.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter under the given format name.
// Existing entries for the same name are overwritten.
func (r *Registry) Register(name string, f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.formatters[name] = f
}

// Formatter returns the formatter for the given format, or an error if not found.
func (r *Registry) Formatter(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %s)", name, r.availableLocked())
	}

	return f, nil
}

// Formats returns the sorted list of registered format names.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.formatsLocked()
}

// AvailableFormats returns a comma-separated string of registered format names.
func (r *Registry) AvailableFormats() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.availableLocked()
}

func (r *Registry) formatsLocked() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (r *Registry) availableLocked() string {
	formats := r.formatsLocked()
	if len(formats) == 0 {
		return "none"
	}

	return strings.Join(formats, ", ")
}

// DefaultRegistry returns a registry pre-populated with the built-in
// output formats: table, yaml, json, markdown.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("table", FormatterFunc(SerializeTable))
	r.Register("yaml", FormatterFunc(SerializeYAML))
	r.Register("json", FormatterFunc(SerializeJSON))
	r.Register("markdown", FormatterFunc(SerializeMarkdown))

	return r
}

// NewWriter returns a FileWriter for path, or a StdoutWriter on stdout when
// path is empty.
func NewWriter(path string, stdout Writer) Writer {
	if path == "" {
		return stdout
	}

	return NewFileWriter(path)
}
