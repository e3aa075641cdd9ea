package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"time":1700000000,"blocks":[{"type":"header","data":{"text":"Hi","level":3,"align":"center"}}],"version":"2.30.7"}`))
	}))
	defer srv.Close()

	doc, err := New().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "header", doc.Blocks[0].Type)
	assert.Equal(t, "Hi", doc.Blocks[0].Data.Text)
	assert.Equal(t, 3, doc.Blocks[0].Data.Level)
	assert.Equal(t, "center", doc.Blocks[0].Data.Align)
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestFetchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "decoding document")
}
