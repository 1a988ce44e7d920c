package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// LibreTranslator talks to a LibreTranslate instance. Requests are made once;
// there is no retry.
type LibreTranslator struct {
	Client  *http.Client
	baseURL string
	apiKey  string
}

func NewLibreTranslator(baseURL, apiKey string) *LibreTranslator {
	slog.Info("[LibreTranslator] Initializing Client",
		slog.String("url", baseURL),
		slog.Duration("timeout", TRANSLATE_TIMEOUT))
	return &LibreTranslator{
		Client:  &http.Client{Timeout: TRANSLATE_TIMEOUT},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (l *LibreTranslator) Name() string {
	return "libretranslate"
}

func (l *LibreTranslator) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	var result libreTranslateResponse
	start := time.Now()

	err := l.postJSON(ctx, l.baseURL+"/translate", libreTranslateRequest{
		Q:      text,
		Source: languageCode(source),
		Target: languageCode(target),
		Format: "text",
		APIKey: l.apiKey,
	}, &result)
	if err != nil {
		slog.Error("[LibreTranslator] Translate request failed",
			slog.Duration("elapsed", time.Since(start)))
		return "", err
	}

	slog.Debug("[LibreTranslator] Translate request successful",
		slog.Duration("elapsed", time.Since(start)))
	return result.TranslatedText, nil
}

func (l *LibreTranslator) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, HEALTH_TIMEOUT)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/languages", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health request returned status code %d", resp.StatusCode)
	}
	return nil
}

func (l *LibreTranslator) postJSON(ctx context.Context, endpoint string, input interface{}, output *libreTranslateResponse) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[LibreTranslator] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("status", resp.StatusCode))
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("status code %d", resp.StatusCode)
		}
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if output.Error != "" {
			return fmt.Errorf("status code %d: %s", resp.StatusCode, output.Error)
		}
		return fmt.Errorf("status code %d", resp.StatusCode)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
