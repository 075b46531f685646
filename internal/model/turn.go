package model

import "time"

// Role is the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Label is how the role is written into prompts.
func (r Role) Label() string {
	if r == RoleAssistant {
		return "Therapist"
	}
	return "User"
}

// Turn is one user message or one assistant reply.
type Turn struct {
	Role      Role
	Content   string
	Timestamp time.Time
}
