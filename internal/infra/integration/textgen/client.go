package textgen

import (
	"context"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultModel = openai.ChatModelGPT4oMini

// Config holds construction options for the generation client.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string        // Optional (tests)
	HTTPClient *http.Client  // Optional (tests)
	Timeout    time.Duration // HTTP timeout
}

// Client drafts outreach emails through the hosted chat-completion API.
// Construct once at startup and share across requests.
type Client struct {
	apiKey string
	model  string
	client openai.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: openai.NewClient(opts...),
	}
}

// Generate builds the prompt, calls the model and parses the response into a
// draft. Transport, auth and quota failures propagate untouched; a response
// that merely fails to follow the requested shape never does, the parser
// always produces something.
func (c *Client) Generate(ctx context.Context, input PromptInput) (EmailDraft, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(input)),
		},
	})
	if err != nil {
		return EmailDraft{}, err
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return ParseDraft(text), nil
}

// Configured reports whether an API key was provided, for health reporting.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}
