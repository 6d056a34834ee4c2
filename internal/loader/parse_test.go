package loader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantHeader []string
		wantRows   []map[string]string
		wantErrs   int
	}{
		{
			name: "empty document",
			in:   "",
		},
		{
			name:       "header only",
			in:         "id,name\n",
			wantHeader: []string{"id", "name"},
		},
		{
			name:       "quoted field with comma and newline",
			in:         "id,name,summary\n1,Reef,\"a, b\nc\"\n",
			wantHeader: []string{"id", "name", "summary"},
			wantRows:   []map[string]string{{"id": "1", "name": "Reef", "summary": "a, b\nc"}},
		},
		{
			name:       "blank lines skipped",
			in:         "id\n\n1\n\n2\n",
			wantHeader: []string{"id"},
			wantRows:   []map[string]string{{"id": "1"}, {"id": "2"}},
		},
		{
			name:       "short row padded",
			in:         "a,b,c\n1\n",
			wantHeader: []string{"a", "b", "c"},
			wantRows:   []map[string]string{{"a": "1", "b": "", "c": ""}},
			wantErrs:   1,
		},
		{
			name:       "long row truncated",
			in:         "a,b\n1,2,3\n",
			wantHeader: []string{"a", "b"},
			wantRows:   []map[string]string{{"a": "1", "b": "2"}},
			wantErrs:   1,
		},
		{
			name:       "bare quote kept literally",
			in:         "a,b\nx\"y,1\n2,3\n",
			wantHeader: []string{"a", "b"},
			wantRows:   []map[string]string{{"a": "x\"y", "b": "1"}, {"a": "2", "b": "3"}},
		},
		{
			name:       "unterminated quote runs to end",
			in:         "a,b\n1,\"open\n2,3\n",
			wantHeader: []string{"a", "b"},
			wantRows:   []map[string]string{{"a": "1", "b": "open\n2,3\n"}},
		},
		{
			name:       "byte order mark stripped",
			in:         "\xef\xbb\xbfid,name\n1,A\n",
			wantHeader: []string{"id", "name"},
			wantRows:   []map[string]string{{"id": "1", "name": "A"}},
		},
		{
			name:     "binary document",
			in:       "PK\x03\x04\x14\x00\x06\x00",
			wantErrs: 1,
		},
		{
			name:     "invalid utf-8",
			in:       "id,name\n1,\xff\xfe\n",
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCSV([]byte(tt.in))

			if diff := cmp.Diff(tt.wantHeader, got.Header); diff != "" {
				t.Errorf("header mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantRows, got.Rows); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}

			assert.Len(t, got.Errors, tt.wantErrs)
		})
	}
}

func TestParseCSV_FieldCountErrorNamesLine(t *testing.T) {
	got := ParseCSV([]byte("a,b\n1,2\n3\n"))

	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0].Error(), "line 3")
}

func TestParseCSV_NotTextReportsSentinel(t *testing.T) {
	got := ParseCSV([]byte("PK\x03\x04\x00\x00"))

	require.Len(t, got.Errors, 1)
	assert.ErrorIs(t, got.Errors[0], ErrNotText)
	assert.Empty(t, got.Header)
	assert.Empty(t, got.Rows)
}
