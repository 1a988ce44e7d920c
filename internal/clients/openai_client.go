package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

const openAITranslatePrompt = `You are a translation engine. Translate the user's text from %s to %s.
Return only the translated text: no quotes, no notes, no explanations.
Keep the original line breaks and punctuation.`

type OpenAITranslator struct {
	Client *openai.Client
	model  string
}

func NewOpenAITranslator(apiKey, model string, opts ...option.RequestOption) *OpenAITranslator {
	httpClient := &http.Client{
		Timeout: openAIRequestTimeout,
	}
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}, opts...)

	slog.Info("[OpenAITranslator] OpenAI client initialized with custom HTTP timeout",
		slog.Duration("timeout", openAIRequestTimeout),
		slog.String("model", model))

	return &OpenAITranslator{
		Client: openai.NewClient(opts...),
		model:  model,
	}
}

func (o *OpenAITranslator) Name() string {
	return "openai"
}

func (o *OpenAITranslator) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	prompt := fmt.Sprintf(openAITranslatePrompt, languageName(source), languageName(target))

	chatCompletion, err := o.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt),
			openai.UserMessage(text),
		}),
		Model:       openai.F(openai.ChatModel(o.model)),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("[OpenAITranslator] chat completion failed: %w", err)
	}

	if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
		return "", errors.New("[OpenAITranslator] empty response")
	}

	return strings.TrimSpace(chatCompletion.Choices[0].Message.Content), nil
}

func languageName(tag language.Tag) string {
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return tag.String()
}
