package pathways_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pathways/pkg/pathways"
)

const sheet = `id,name,actors,financed
1,Blue bond,Impact investors,Full management stack
2,Dive fees,Tourism & hospitality,Operations
3,Reef insurance,Impact investors; Tourism & hospitality,Restoration
x,Broken row,Impact investors,Operations
`

func writeSheet(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sheet.csv")
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o600))

	return path
}

func TestLoad_File(t *testing.T) {
	res, err := pathways.Load(context.Background(), writeSheet(t))
	require.NoError(t, err)

	assert.Equal(t, pathways.StatusOK, res.Status)
	assert.Len(t, res.Pathways, 3)
	assert.Equal(t, 1, res.Dropped)
	assert.False(t, res.LastUpdated.IsZero())
}

func TestLoad_HTTPWithObserver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sheet))
	}))
	defer srv.Close()

	var states []pathways.Status

	res, err := pathways.Load(context.Background(), srv.URL,
		pathways.WithHTTPClient(srv.Client()),
		pathways.WithObserver(func(s pathways.Status) { states = append(states, s) }),
	)
	require.NoError(t, err)

	assert.Len(t, res.Pathways, 3)
	require.Len(t, states, 2)
	assert.Equal(t, pathways.StatusOK, states[1])
}

func TestLoad_Unconfigured(t *testing.T) {
	res, err := pathways.Load(context.Background(), pathways.Unconfigured)
	require.ErrorIs(t, err, pathways.ErrUnconfigured)

	assert.Equal(t, pathways.StatusUnconfigured, res.Status)
	assert.Empty(t, res.Pathways)
}

func TestLoad_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	res, err := pathways.Load(context.Background(), srv.URL)
	require.ErrorIs(t, err, pathways.ErrFetch)
	assert.Equal(t, pathways.StatusFetchError, res.Status)
}

func TestLoad_MaxBodySize(t *testing.T) {
	_, err := pathways.Load(context.Background(), writeSheet(t), pathways.WithMaxBodySize(10))
	require.ErrorIs(t, err, pathways.ErrFetch)
}

func TestFilter(t *testing.T) {
	res, err := pathways.Load(context.Background(), writeSheet(t))
	require.NoError(t, err)

	sel := pathways.NewSelection().Toggle(pathways.FacetActor, "Impact investors")
	m := pathways.Filter(res.Pathways, sel)

	assert.Equal(t, []bool{true, false, true}, m.Matches)
	assert.Equal(t, 2, m.Count)

	m = pathways.Filter(res.Pathways, pathways.NewSelection())
	assert.Equal(t, 3, m.Count)
}

func TestRender(t *testing.T) {
	res, err := pathways.Load(context.Background(), writeSheet(t))
	require.NoError(t, err)

	sel := pathways.NewSelection().SelectFinanced("Operations")

	out, err := pathways.Render("table", res.Pathways, sel, false)
	require.NoError(t, err)
	assert.Contains(t, string(out), "1 of 3 pathways matching")
	assert.Contains(t, string(out), "Dive fees")

	_, err = pathways.Render("xml", res.Pathways, sel, false)
	require.Error(t, err)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "markdown", "table", "yaml"}, pathways.Formats())
}

func TestDefaultTaxonomy(t *testing.T) {
	tax := pathways.DefaultTaxonomy()
	assert.Contains(t, tax.Values(pathways.FacetActor), "Impact investors")
	assert.Len(t, tax.Financed, 5)
}
