package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerinn/internal/feature/auth/domain/entity"
)

func TestNewClient_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(context.Background(), Options{})
	assert.Error(t, err)
}

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	var path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Try the BTech track."}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), Options{
		APIKey:     "test-key",
		BaseURL:    srv.URL + "/",
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	reply, err := c.Complete(context.Background(), "You are a helpful career mentor.", []entity.ChatMessage{
		{Role: entity.RoleUser, Content: "hi"},
		{Role: entity.RoleAssistant, Content: "hello"},
		{Role: entity.RoleUser, Content: "which track?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Try the BTech track.", reply)
	assert.True(t, strings.HasSuffix(path, "models/"+DefaultModel+":generateContent"), "unexpected path %s", path)
	assert.Contains(t, body, "You are a helpful career mentor.")
	assert.Contains(t, body, `"model"`)
	assert.Contains(t, body, "which track?")
}

func TestClient_Complete_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), Options{APIKey: "bad", BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "sys", []entity.ChatMessage{{Role: entity.RoleUser, Content: "hi"}})

	assert.Error(t, err)
}
