package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskSendsChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "resumeboard", r.Header.Get("X-Title"))
		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req.Model)
		assert.Len(t, req.Messages, 2)
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Go developer."}}]}`)
	}))
	defer srv.Close()

	c := New(Options{APIKey: "key", BaseURL: srv.URL + "/v1/", AppTitle: "resumeboard"})
	got, err := c.Ask(context.Background(), "sys", "cv text")
	require.NoError(t, err)
	assert.Equal(t, "Go developer.", got)
}

func TestAskErrors(t *testing.T) {
	_, err := New(Options{}).Ask(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "api key is empty")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":"rate limited"}`)
	}))
	defer srv.Close()

	_, err = New(Options{APIKey: "k", BaseURL: srv.URL}).Ask(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "openrouter http 429")
}
