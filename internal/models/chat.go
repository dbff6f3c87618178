package models

// ChatRole distinguishes the two sides of a conversation.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn in a chat transcript. Messages are append-only
// and never mutated once added.
type ChatMessage struct {
	Role ChatRole
	Text string
}
