package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	TranslatorGoogle        = "google"
	TranslatorLibre         = "libretranslate"
	TranslatorOpenAI        = "openai"
	TranslatorNone          = "none"
	SentimentPattern        = "pattern"
	SentimentVader          = "vader"
	defaultMaxUploadBytes   = 5 << 20
	defaultCacheTTLSeconds  = 3600
	defaultHealthcheckEvery = 60
)

type Config struct {
	HTTPAddr            string
	SourceLang          language.Tag
	TargetLang          language.Tag
	TranslatorBackend   string
	LibreTranslateURL   string
	LibreTranslateKey   string
	OpenAIAPIKey        string
	OpenAIModel         string
	SentimentBackend    string
	ValkeyAddress       string
	TranslationCacheTTL time.Duration
	HealthcheckInterval time.Duration
	MaxUploadBytes      int64
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

func getEnvLang(key string, defaultValue language.Tag) language.Tag {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	tag, err := language.Parse(raw)
	if err != nil {
		slog.Warn("[Config] Invalid language code, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.String("default", defaultValue.String()))
		return defaultValue
	}
	return tag
}

// Load reads the process environment. It should be called after LoadEnv.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		SourceLang:          getEnvLang("SOURCE_LANG", language.Spanish),
		TargetLang:          getEnvLang("TARGET_LANG", language.English),
		TranslatorBackend:   strings.ToLower(getEnv("TRANSLATOR_BACKEND", TranslatorGoogle)),
		LibreTranslateURL:   getEnv("LIBRETRANSLATE_URL", "http://localhost:5000"),
		LibreTranslateKey:   getEnv("LIBRETRANSLATE_API_KEY", ""),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		SentimentBackend:    strings.ToLower(getEnv("SENTIMENT_BACKEND", SentimentVader)),
		ValkeyAddress:       getEnv("VALKEY_INIT_ADDRESS", ""),
		TranslationCacheTTL: time.Duration(getEnvInt("TRANSLATION_CACHE_TTL", defaultCacheTTLSeconds)) * time.Second,
		HealthcheckInterval: time.Duration(getEnvInt("HEALTHCHECK_INTERVAL", defaultHealthcheckEvery)) * time.Second,
		MaxUploadBytes:      int64(getEnvInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
	}

	switch cfg.TranslatorBackend {
	case TranslatorGoogle, TranslatorLibre, TranslatorNone:
	case TranslatorOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return cfg, fmt.Errorf("[Config] TRANSLATOR_BACKEND=openai requires OPENAI_API_KEY")
		}
	default:
		return cfg, fmt.Errorf("[Config] unknown TRANSLATOR_BACKEND %q", cfg.TranslatorBackend)
	}

	switch cfg.SentimentBackend {
	case SentimentPattern, SentimentVader:
	default:
		return cfg, fmt.Errorf("[Config] unknown SENTIMENT_BACKEND %q", cfg.SentimentBackend)
	}

	// Both bundled lexicons are English.
	if base, _ := cfg.TargetLang.Base(); base.String() != "en" {
		slog.Warn("[Config] TARGET_LANG overridden, sentiment lexicon is English",
			slog.String("requested", cfg.TargetLang.String()))
		cfg.TargetLang = language.English
	}

	return cfg, nil
}
