package briefing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	xhttp "ApexDesk/pkg/http"
)

// LLMClient generates a briefing completion from a prompt. Satisfied by
// AnthropicClient; tests use a stub.
type LLMClient interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// UpstreamError marks a failure talking to the model API. The handler maps
// it to 502; Message is user-facing French.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AnthropicClient talks to an Anthropic-style messages API.
type AnthropicClient struct {
	apiURL    string
	model     string
	maxTokens int
	http      *xhttp.Client
}

func NewAnthropicClient(apiURL, model string, maxTokens int, timeout time.Duration) *AnthropicClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &AnthropicClient{
		apiURL:    apiURL,
		model:     model,
		maxTokens: maxTokens,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends the prompt and returns the first text block of the reply.
func (c *AnthropicClient) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	var resp messagesResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.apiURL,
		Headers: map[string]string{
			"x-api-key":         strings.TrimSpace(apiKey),
			"anthropic-version": "2023-06-01",
			"content-type":      "application/json",
		},
		Body: messagesRequest{
			Model:     c.model,
			MaxTokens: c.maxTokens,
			Messages:  []message{{Role: "user", Content: prompt}},
		},
	}, &resp)
	if err != nil {
		return "", mapUpstreamError(err)
	}

	if len(resp.Content) == 0 {
		return "", nil
	}
	return resp.Content[0].Text, nil
}

func mapUpstreamError(err error) error {
	var se *xhttp.StatusError
	if !errors.As(err, &se) {
		return &UpstreamError{
			Message: "Impossible de joindre l'API Anthropic. Vérifiez votre connexion internet.",
			Err:     err,
		}
	}

	switch se.Status {
	case 401:
		return &UpstreamError{Message: "Clé API invalide ou expirée. Vérifiez votre clé Anthropic (sk-ant-…)."}
	case 403:
		return &UpstreamError{Message: "Accès refusé. Votre clé n'a pas accès au modèle demandé."}
	case 429:
		return &UpstreamError{Message: "Quota API dépassé. Réessayez dans quelques minutes."}
	}

	msg := fmt.Sprintf("Erreur HTTP %d", se.Status)
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal([]byte(se.Body), &parsed) == nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	}
	return &UpstreamError{Message: msg}
}
