package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bregydoc/gtranslate"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestGoogleTranslator(t *testing.T) {
	var got gtranslate.TranslationParams
	g := &GoogleTranslator{translate: func(text string, params gtranslate.TranslationParams) (string, error) {
		got = params
		return "I am happy", nil
	}}

	out, err := g.Translate(context.Background(), "Estoy feliz", language.MustParse("es-MX"), language.English)
	require.NoError(t, err)

	assert.Equal(t, "I am happy", out)
	assert.Equal(t, "es", got.From)
	assert.Equal(t, "en", got.To)
	assert.Equal(t, 1, got.Tries)
	assert.Equal(t, "google", g.Name())
}

func TestGoogleTranslatorError(t *testing.T) {
	g := &GoogleTranslator{translate: func(string, gtranslate.TranslationParams) (string, error) {
		return "", errors.New("unexpected status 429")
	}}

	_, err := g.Translate(context.Background(), "Hola", language.Spanish, language.English)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGoogleTranslatorCanceledContext(t *testing.T) {
	called := false
	g := &GoogleTranslator{translate: func(string, gtranslate.TranslationParams) (string, error) {
		called = true
		return "", nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Translate(ctx, "Hola", language.Spanish, language.English)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestLibreTranslator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req libreTranslateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hola mundo", req.Q)
		assert.Equal(t, "es", req.Source)
		assert.Equal(t, "en", req.Target)
		assert.Equal(t, "text", req.Format)
		assert.Equal(t, "secret", req.APIKey)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"translatedText": "Hello world"}`)
	}))
	defer server.Close()

	l := NewLibreTranslator(server.URL+"/", "secret")
	out, err := l.Translate(context.Background(), "Hola mundo", language.Spanish, language.English)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", out)
}

func TestLibreTranslatorErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"service error message", http.StatusBadRequest, `{"error": "source language not supported"}`, "source language not supported"},
		{"non json failure", http.StatusBadGateway, `<html>bad gateway</html>`, "status code 502"},
		{"malformed success", http.StatusOK, `not json`, "failed to unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			l := NewLibreTranslator(server.URL, "")
			_, err := l.Translate(context.Background(), "Hola", language.Spanish, language.English)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 1, calls, "no retries")
		})
	}
}

func TestLibreTranslatorUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	l := NewLibreTranslator(url, "")
	_, err := l.Translate(context.Background(), "Hola", language.Spanish, language.English)
	assert.Error(t, err)
	assert.Error(t, l.CheckHealth(context.Background()))
}

func TestLibreTranslatorHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/languages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `[{"code":"en","name":"English"}]`)
	}))
	defer server.Close()

	assert.NoError(t, NewLibreTranslator(server.URL, "").CheckHealth(context.Background()))
}

func TestOpenAITranslator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])
		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		system := messages[0].(map[string]any)
		assert.Contains(t, system["content"], "from Spanish to English")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-test",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "  Good morning  "}
			}]
		}`)
	}))
	defer server.Close()

	o := NewOpenAITranslator("test-key", "gpt-test", option.WithBaseURL(server.URL+"/"))
	out, err := o.Translate(context.Background(), "Buenos días", language.Spanish, language.English)
	require.NoError(t, err)
	assert.Equal(t, "Good morning", out)
	assert.Equal(t, "openai", o.Name())
}

func TestOpenAITranslatorEmptyChoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"x","object":"chat.completion","created":0,"model":"m","choices":[]}`)
	}))
	defer server.Close()

	o := NewOpenAITranslator("k", "m", option.WithBaseURL(server.URL+"/"))
	_, err := o.Translate(context.Background(), "Hola", language.Spanish, language.English)
	assert.Error(t, err)
}

func TestIsConnectionError(t *testing.T) {
	assert.False(t, isConnectionError(nil))
	assert.True(t, isConnectionError(errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")))
	assert.True(t, isConnectionError(errors.New("read: i/o timeout")))
	assert.False(t, isConnectionError(errors.New("WRONGTYPE Operation against a key")))
}

func TestExpirySeconds(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want int64
	}{
		{0, 0},
		{-time.Minute, 0},
		{500 * time.Millisecond, 0},
		{time.Second, 1},
		{90 * time.Second, 90},
		{time.Hour + 900*time.Millisecond, 3600},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, expirySeconds(tt.ttl), tt.ttl.String())
	}
}
