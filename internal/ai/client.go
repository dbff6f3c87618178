// Package ai is the gateway to the hosted Gemini models: one multi-turn
// chat channel plus two single-shot operations (explain, deep generation).
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const deepMaxOutputTokens = 8192

// Client wraps the Gemini SDK client. All failures surface to the UI as
// fixed localized strings; the underlying errors only reach the log file.
type Client struct {
	client   *genai.Client
	settings *Settings
	log      *logrus.Logger
}

// NewClient connects to the Gemini API using the key from the settings
// file or the GEMINI_API_KEY environment variable.
func NewClient(ctx context.Context, settings *Settings, log *logrus.Logger) (*Client, error) {
	apiKey := settings.ResolveAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in settings or environment")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &Client{client: client, settings: settings, log: log}, nil
}

// Close releases the underlying SDK client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Conversation is one multi-turn chat bound to a system instruction. The
// SDK keeps the turn history client-side and resends it each call, so
// callers only ever pass the newest message.
type Conversation struct {
	chat *genai.ChatSession
	log  *logrus.Logger
}

// NewConversation starts a chat on the fast model with the given system
// instruction. Prior conversations are simply abandoned; there is no
// carry-over of turns.
func (c *Client) NewConversation(systemInstruction string) *Conversation {
	model := c.client.GenerativeModel(c.settings.FastModel)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	return &Conversation{chat: model.StartChat(), log: c.log}
}

// Send delivers one user turn and returns the model's reply text.
func (conv *Conversation) Send(ctx context.Context, message string) (string, error) {
	resp, err := conv.chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		conv.log.WithError(err).Error("chat turn failed")
		return "", fmt.Errorf("failed to send chat message: %v", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no response candidates returned")
	}
	return text, nil
}

// Explain asks the fast model for a short explanation of a shell command.
// It never fails: gateway errors collapse to a fixed localized message.
func (c *Client) Explain(ctx context.Context, command string) string {
	model := c.client.GenerativeModel(c.settings.FastModel)
	resp, err := model.GenerateContent(ctx, genai.Text(explainPrompt(command)))
	if err != nil {
		c.log.WithError(err).Error("explain request failed")
		return MsgExplainError
	}
	if text := responseText(resp); text != "" {
		return text
	}
	return MsgExplainEmpty
}

// GenerateComplexConfig asks the deep model for a long-form configuration
// or script. Like Explain, failures yield a fixed message, never an error.
func (c *Client) GenerateComplexConfig(ctx context.Context, prompt, contextText string) string {
	model := c.client.GenerativeModel(c.settings.DeepModel)
	model.SetMaxOutputTokens(deepMaxOutputTokens)
	resp, err := model.GenerateContent(ctx, genai.Text(deepPrompt(prompt, contextText)))
	if err != nil {
		c.log.WithError(err).Error("deep generation failed")
		return MsgConfigError
	}
	if text := responseText(resp); text != "" {
		return text
	}
	return MsgConfigEmpty
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
