/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dataset_test.go
Description: Tests for the dataset layer. Covers CSV loading from local files
and HTTP sources, row deduplication, frame serialization, and HTML cleanup of
text columns.
*/

package dataset

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/akaylee-features/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "text,label\nHello World!,pos\nabc123,neg\n"

// writeTempCSV writes CSV content to a temp file and returns its path
func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestSourceLoadsLocalFile tests loading a CSV file into a frame
func TestSourceLoadsLocalFile(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	source := NewSource("test", "test dataset", path, 5*time.Second)

	f, err := source.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"text", "label"}, f.Columns())
	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, []int{0, 1}, f.Index())

	text, err := f.Series("text")
	require.NoError(t, err)
	assert.Equal(t, frame.DtypeString, text.Dtype())
	assert.Equal(t, "Hello World!", text.Str(0))
}

// TestSourceLoadsHTTP tests loading a CSV dataset over HTTP
func TestSourceLoadsHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	source := NewSource("remote", "remote dataset", server.URL, 5*time.Second)
	f, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, f.NumRows())
}

// TestSourceHTTPError tests non-200 responses
func TestSourceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := NewSource("remote", "remote dataset", server.URL, 5*time.Second)
	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

// TestSourceDedupRows tests SHA256 row deduplication
func TestSourceDedupRows(t *testing.T) {
	path := writeTempCSV(t, "text\nsame\nsame\nother\n")
	source := NewSource("test", "test dataset", path, 5*time.Second)
	source.DedupRows = true

	f, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, f.NumRows())
}

// TestSourceEmptyDataset tests the missing-header error
func TestSourceEmptyDataset(t *testing.T) {
	path := writeTempCSV(t, "")
	source := NewSource("test", "test dataset", path, 5*time.Second)
	_, err := source.Load(context.Background())
	assert.Error(t, err)
}

// TestWriteRoundTrip tests frame serialization and reload
func TestWriteRoundTrip(t *testing.T) {
	f := frame.New([]int{4, 9})
	require.NoError(t, f.AddSeries(frame.NewStringSeries("text", []string{"a", "b"})))
	require.NoError(t, f.AddSeries(frame.NewFloatSeries("ratio", []float64{0.25, 0.75})))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))

	assert.Equal(t, "index,text,ratio\n4,a,0.25\n9,b,0.75\n", buf.String())

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, f))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(written))
}

// TestCleanHTML tests markup stripping of a single value
func TestCleanHTML(t *testing.T) {
	text, err := CleanHTML("<p>Hello <b>World</b>!</p>")
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", text)

	// Plain text passes through
	text, err = CleanHTML("no markup here")
	require.NoError(t, err)
	assert.Equal(t, "no markup here", text)
}

// TestCleanHTMLColumns tests cleaning selected frame columns
func TestCleanHTMLColumns(t *testing.T) {
	f := frame.New(frame.RangeIndex(2))
	require.NoError(t, f.AddSeries(frame.NewStringSeries("body", []string{"<div>one</div>", "<span>two</span>"})))
	require.NoError(t, f.AddSeries(frame.NewStringSeries("label", []string{"<keep>", "<keep>"})))

	out, err := CleanHTMLColumns(f, []string{"body"})
	require.NoError(t, err)

	body, err := out.Series("body")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, body.Strings())

	// Untargeted columns are untouched
	label, err := out.Series("label")
	require.NoError(t, err)
	assert.Equal(t, "<keep>", label.Str(0))
}

// TestCleanHTMLColumnsRejectsNumeric tests the non-string column error
func TestCleanHTMLColumnsRejectsNumeric(t *testing.T) {
	f := frame.New(frame.RangeIndex(1))
	require.NoError(t, f.AddSeries(frame.NewIntSeries("count", []float64{1})))
	_, err := CleanHTMLColumns(f, []string{"count"})
	assert.Error(t, err)
}
