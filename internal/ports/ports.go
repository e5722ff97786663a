// Package ports declares the interfaces the client core needs from its
// collaborators: the transport that carries action requests to the server
// and the surface that presents state to the player.
package ports

import "goldenpotato/internal/domain"

// ActionRequest is an outbound action, ready for the wire. Requests are
// fire-and-forget: the server re-validates every action and may ignore it.
type ActionRequest struct {
	OpCode  int64
	Name    string
	Payload []byte
}

// Dispatcher delivers action requests to the server. Implementations must
// accept requests asynchronously with no required response.
type Dispatcher interface {
	Dispatch(req ActionRequest) error
}

// Action is one button or toggle presented to the player.
type Action struct {
	ID      string
	Label   string
	Enabled bool
}

// Surface is the presentation side of the client. Calls are presentation
// effects only: they must return promptly and may settle asynchronously,
// and they never feed back into canonical state.
type Surface interface {
	RedrawHand(hand []domain.Card, highlightInterrupts bool)
	ShowActions(actions []Action)
	ClearActions()
	ShowStatus(line string)
}
