package domain

import "context"

// Chat roles understood by the generation backend.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one role-tagged message in a generation request.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatClient sends an ordered list of role-tagged messages to a generation
// backend and returns the generated text.
type ChatClient interface {
	Complete(ctx context.Context, messages []ChatMessage, temperature float64) (string, error)
	Version() string
}
