package session

import "context"

// State is the session's position in the turn cycle.
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingLocal  State = "awaiting_local"
	StateAwaitingRemote State = "awaiting_remote"
)

// Generator produces answers for utterances with no local match.
// pkg/llmprovider.Manager and pkg/gemini.Client both satisfy it.
type Generator interface {
	GenerateAnswer(ctx context.Context, question string) (string, error)
}
