package agent

import (
	"context"
	"fmt"

	"github.com/teecush/tracker/logger"
	"google.golang.org/genai"
)

// maxCalls bounds the function calls answered for a single question.
const maxCalls = 8

// Chat is a conversation with a model that keeps its history.
type Chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        Chat
}

// Start opens the expert chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("could not start chat with %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Started reports whether the chat is open.
func (e *Expert) Started() bool { return e.chat != nil }

// Ask sends parts to the expert and answers its function calls until it replies with text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("expert %s is not started", e.Name)
	}
	for range maxCalls {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("no response from expert %s", e.Name)
		}
		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			return resp.Text(), nil
		}
		if e.Library == nil {
			return "", fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}

		// Ask again the expert with the responses it asked for.
		next := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			logger.Get().Debugw("function call", "expert", e.Name, "function", call.Name, "args", call.Args)
			next = append(next, &genai.Part{FunctionResponse: e.Library(ctx, call)})
		}
		parts = next
	}
	return "", fmt.Errorf("expert %s made more than %d function calls", e.Name, maxCalls)
}
