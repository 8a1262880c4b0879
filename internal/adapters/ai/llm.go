package ai

import (
	"context"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

const groqAPIBaseURL = "https://api.groq.com/openai/v1"

// LLM is a model handle pinned to one model and temperature, backed by the
// official OpenAI Go SDK pointed at the Groq OpenAI-compatible endpoint.
type LLM struct {
	client      openai.Client // NewClient returns Client (not *Client)
	model       string
	temperature float64
	timeout     time.Duration
	log         *logger.Logger
}

// NewLLM creates a model handle. The API key is required; classification does
// not need it, but every completion call does.
func NewLLM(apiKey, baseURL, model string, temperature float64) (*LLM, error) {
	if apiKey == "" {
		return nil, errors.Wrap(errors.ErrConfiguration, "groq API key is required")
	}
	if baseURL == "" {
		baseURL = groqAPIBaseURL
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)

	return &LLM{
		client:      client,
		model:       model,
		temperature: temperature,
		timeout:     60 * time.Second,
		log:         logger.Get().With("component", "groq_llm", "model", model),
	}, nil
}

// Model returns the pinned model identifier.
func (l *LLM) Model() string { return l.model }

// Temperature returns the pinned sampling temperature.
func (l *LLM) Temperature() float64 { return l.temperature }

// Complete sends a chat completion request and returns the response text.
func (l *LLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	start := time.Now()
	response, err := l.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(l.model),
		Temperature: openai.Float(l.temperature),
		Messages:    messages,
	})
	metrics.RecordLLMCompletion(l.model, time.Since(start), err)
	if err != nil {
		return "", errors.Wrap(err, "groq completion failed")
	}

	if len(response.Choices) == 0 {
		return "", errors.Wrapf(errors.ErrInternal, "no completion choices returned")
	}

	l.log.Debug("Completion finished",
		"prompt_length", len(prompt),
		"tokens_used", response.Usage.TotalTokens)

	return response.Choices[0].Message.Content, nil
}
