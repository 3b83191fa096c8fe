package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/korpuslab/patmin/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotationStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/parse", func(w http.ResponseWriter, r *http.Request) {
		var req parseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(parseResponse{Tokens: []sentence.Token{
			{Text: req.Text, Lemma: req.Text, Pos: "NOUN", Dep: sentence.RootDep, Index: 0, Head: 0, IsAlpha: true},
		}})
	})
	mux.HandleFunc("/api/render", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(renderResponse{HTML: "<svg/>"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClientParse(t *testing.T) {
	srv := annotationStub(t)
	c := NewHTTPClient(srv.URL, time.Second)

	p, err := c.Parse(context.Background(), "насос")
	require.NoError(t, err)
	assert.Equal(t, "насос", p.Text)
	require.Len(t, p.Tokens, 1)
	assert.Equal(t, "насос", p.Tokens[0].Lemma)
}

func TestHTTPClientRender(t *testing.T) {
	srv := annotationStub(t)
	c := NewHTTPClient(srv.URL, time.Second)

	html, err := c.Render(context.Background(), "насос")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", html)
}

func TestHTTPClientPingDown(t *testing.T) {
	srv := annotationStub(t)
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	err := c.Ping(context.Background())

	var unavailable *UnavailableError
	require.Error(t, err)
	assert.True(t, errors.As(err, &unavailable))
}

func TestHTTPClientParseErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{Error: "empty text"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Parse(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty text")
}
