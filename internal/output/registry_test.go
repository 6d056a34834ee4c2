package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func stubFormatter(out string) Formatter {
	return FormatterFunc(func(_ *Listing) ([]byte, error) {
		return []byte(out), nil
	})
}

func TestRegistry_Register_And_Lookup(t *testing.T) {
	r := NewRegistry()
	r.Register("test", stubFormatter("hello"))

	f, err := r.Formatter("test")
	require.NoError(t, err)

	got, err := f.Format(&Listing{})
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestRegistry_UnknownFormat(t *testing.T) {
	r := NewRegistry()

	_, err := r.Formatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
	assert.Contains(t, err.Error(), "xml")
	assert.Contains(t, err.Error(), "available: none")
}

func TestRegistry_Formats(t *testing.T) {
	r := NewRegistry()
	r.Register("json", stubFormatter(""))
	r.Register("yaml", stubFormatter(""))
	r.Register("csv", stubFormatter(""))

	assert.Equal(t, []string{"csv", "json", "yaml"}, r.Formats())
}

func TestRegistry_Overwrite(t *testing.T) {
	r := NewRegistry()
	r.Register("fmt", stubFormatter("old"))
	r.Register("fmt", stubFormatter("new"))

	f, err := r.Formatter("fmt")
	require.NoError(t, err)

	got, err := f.Format(&Listing{})
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestRegistry_ErrorMessage_ListsFormats(t *testing.T) {
	r := NewRegistry()
	r.Register("a", stubFormatter(""))
	r.Register("b", stubFormatter(""))

	_, err := r.Formatter("c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a, b")
}

func TestDefaultRegistry(t *testing.T) {
	assert.Equal(t, []string{"json", "markdown", "table", "yaml"}, DefaultRegistry().Formats())
}

// ---------------------------------------------------------------------------
// NewWriter
// ---------------------------------------------------------------------------

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	stdout := NewStdoutWriter(&buf)

	assert.Same(t, stdout, NewWriter("", stdout))
	assert.IsType(t, &FileWriter{}, NewWriter("/tmp/pathways.yaml", stdout))
}
