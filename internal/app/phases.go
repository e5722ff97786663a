package app

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"goldenpotato/internal/domain"
	"goldenpotato/internal/ports"
)

// Phase names as declared by the server. The authoritative phase always
// arrives externally; the machine only reacts.
type Phase string

const (
	PhasePlayerTurn        Phase = "playerTurn"
	PhaseReaction          Phase = "reaction"
	PhaseTargetSelection   Phase = "targetSelection"
	PhaseDiscard           Phase = "discardPhase"
	PhaseCardSelection     Phase = "cardSelection"
	PhaseCardNameSelection Phase = "cardNameSelection"
	PhaseActionResolution  Phase = "actionResolution"
)

// RevealedChoice is one selectable revealed card, named by an opaque token.
type RevealedChoice struct {
	Token string      `json:"token"`
	Card  CardPayload `json:"card"`
}

// NameGroup is one card type's entries in the name-selection catalog.
type NameGroup struct {
	CardType    string    `json:"card_type"`
	NameIndexes []FlexInt `json:"names"`
}

// PhaseArgs carries the recognized per-phase argument fields. Every field
// is optional on the wire; unrecognized fields are ignored.
type PhaseArgs struct {
	// Active is the server-declared eligibility of the local seat. An
	// inactive seat still gets passive display updates but no actions.
	Active bool

	CanDiscardAndDraw       bool
	ReactionSeconds         FlexInt
	SelectablePlayers       []int64
	TargetCount             int
	RequiresMultipleTargets bool
	HandSize                int
	CardsToDiscard          int
	RevealedCards           []RevealedChoice
	CardBacks               []string
	CardNames               []NameGroup
}

type rawPhaseArgs struct {
	Active                  *bool            `json:"active"`
	CanDiscardAndDraw       bool             `json:"canDiscardAndDraw"`
	ReactionSeconds         FlexInt          `json:"reactionSeconds"`
	SelectablePlayers       []FlexInt        `json:"selectablePlayers"`
	TargetCount             FlexInt          `json:"targetCount"`
	RequiresMultipleTargets bool             `json:"requiresMultipleTargets"`
	HandSize                FlexInt          `json:"handSize"`
	CardsToDiscard          FlexInt          `json:"cardsToDiscard"`
	RevealedCards           []RevealedChoice `json:"revealedCards"`
	CardBacks               []string         `json:"cardBacks"`
	CardNames               []NameGroup      `json:"cardNames"`
}

// DecodeArgs parses an opaque phase-args object defensively. On a phase
// entry, absent eligibility means eligible: most phases only reach a seat
// that may act.
func DecodeArgs(raw json.RawMessage) PhaseArgs {
	return decodeArgs(raw, true)
}

// decodeArgs takes the eligibility to assume when the args omit active. A
// mid-phase refresh passes the current value so that omitting the field
// does not flip an ineligible seat back to eligible.
func decodeArgs(raw json.RawMessage, activeDefault bool) PhaseArgs {
	var r rawPhaseArgs
	if len(raw) > 0 {
		if err := codec.Unmarshal(raw, &r); err != nil {
			r = rawPhaseArgs{}
		}
	}
	args := PhaseArgs{
		Active:                  activeDefault,
		CanDiscardAndDraw:       r.CanDiscardAndDraw,
		ReactionSeconds:         r.ReactionSeconds,
		TargetCount:             r.TargetCount.Int(0),
		RequiresMultipleTargets: r.RequiresMultipleTargets,
		HandSize:                r.HandSize.Int(0),
		CardsToDiscard:          r.CardsToDiscard.Int(0),
		RevealedCards:           r.RevealedCards,
		CardBacks:               r.CardBacks,
		CardNames:               r.CardNames,
	}
	if r.Active != nil {
		args.Active = *r.Active
	}
	for _, p := range r.SelectablePlayers {
		if p.Set {
			args.SelectablePlayers = append(args.SelectablePlayers, p.Value)
		}
	}
	return args
}

// Handler reacts to a phase's lifecycle events.
type Handler interface {
	OnEnter(args PhaseArgs)
	OnLeave()
	// UpdateActions refreshes the available actions without a phase
	// change, e.g. after a local selection change or a server-side
	// recompute of eligible targets.
	UpdateActions(args PhaseArgs)
}

// Optional interaction capabilities a handler may implement.
type cardToggler interface{ ToggleCard(id int64) }
type seatToggler interface{ ToggleSeat(id int64) }
type actionPresser interface{ Press(id string) }
type namePicker interface{ PickName(cardType string, nameIndex int) }

// phaseDeps bundles what every handler composes over: the shared view,
// the presentation surface, the action sender, the reaction timer and the
// optimistic discard tracker.
type phaseDeps struct {
	log     *zap.Logger
	view    *domain.View
	surface ports.Surface
	actions *ActionSender
	timer   *ReactionTimer
	discard *DiscardTracker
}

// Machine dispatches phase lifecycle events to an explicit handler table.
// An unrecognized phase name has no handler: phase-specific actions are
// silently absent rather than an error.
type Machine struct {
	log  *zap.Logger
	deps *phaseDeps

	handlers map[Phase]Handler
	current  Handler

	// mu covers phase and active, the only fields read from the timer
	// goroutine; everything else is touched solely by the notification
	// loop and interaction callbacks.
	mu     sync.Mutex
	phase  Phase
	active bool
}

// NewMachine builds the handler table and the reaction timer.
func NewMachine(log *zap.Logger, view *domain.View, surface ports.Surface, actions *ActionSender, discard *DiscardTracker, reactionFallback time.Duration) *Machine {
	m := &Machine{log: log}
	timer := NewReactionTimer(log, m.reactionGuard, actions.SkipReaction)
	deps := &phaseDeps{
		log:     log,
		view:    view,
		surface: surface,
		actions: actions,
		timer:   timer,
		discard: discard,
	}
	m.deps = deps
	m.handlers = map[Phase]Handler{
		PhasePlayerTurn:        &playerTurnHandler{deps: deps},
		PhaseReaction:          &reactionHandler{deps: deps, fallback: reactionFallback},
		PhaseTargetSelection:   &targetSelectionHandler{deps: deps},
		PhaseDiscard:           &discardPhaseHandler{deps: deps},
		PhaseCardSelection:     &cardSelectionHandler{deps: deps},
		PhaseCardNameSelection: &cardNameSelectionHandler{deps: deps},
		PhaseActionResolution:  &actionResolutionHandler{deps: deps},
	}
	return m
}

// reactionGuard is the timer's fire-time re-check: the phase must still be
// the reaction phase and the seat still eligible.
func (m *Machine) reactionGuard() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase == PhaseReaction && m.active
}

// Timer exposes the reaction timer for wiring and tests.
func (m *Machine) Timer() *ReactionTimer {
	return m.deps.timer
}

// Phase returns the current phase name.
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// SetPhase leaves the previous handler (if any) and enters the handler for
// the named phase with the given args.
func (m *Machine) SetPhase(name string, rawArgs json.RawMessage) {
	args := DecodeArgs(rawArgs)

	if m.current != nil {
		m.current.OnLeave()
	}

	next := m.handlers[Phase(name)]
	m.mu.Lock()
	m.phase = Phase(name)
	m.active = args.Active
	m.mu.Unlock()

	m.current = next
	if next == nil {
		m.log.Debug("no handler for phase", zap.String("phase", name))
		m.deps.surface.ClearActions()
		return
	}
	m.log.Debug("entering phase", zap.String("phase", name), zap.Bool("active", args.Active))
	next.OnEnter(args)
}

// Refresh re-delivers args to the active handler without a transition.
// Eligibility only changes when the args say so: an update that omits
// active keeps the current value rather than resetting the seat to
// eligible.
func (m *Machine) Refresh(rawArgs json.RawMessage) {
	if m.current == nil {
		return
	}
	m.mu.Lock()
	current := m.active
	m.mu.Unlock()
	args := decodeArgs(rawArgs, current)
	m.mu.Lock()
	m.active = args.Active
	m.mu.Unlock()
	m.current.UpdateActions(args)
}

// ToggleCard forwards a hand-card click to the active handler.
func (m *Machine) ToggleCard(id int64) {
	if h, ok := m.current.(cardToggler); ok {
		h.ToggleCard(id)
	}
}

// ToggleSeat forwards a seat-toggle click to the active handler.
func (m *Machine) ToggleSeat(id int64) {
	if h, ok := m.current.(seatToggler); ok {
		h.ToggleSeat(id)
	}
}

// Press forwards an action-button press to the active handler.
func (m *Machine) Press(actionID string) {
	if h, ok := m.current.(actionPresser); ok {
		h.Press(actionID)
	}
}

// PickName forwards a card-name catalog choice to the active handler.
func (m *Machine) PickName(cardType string, nameIndex int) {
	if h, ok := m.current.(namePicker); ok {
		h.PickName(cardType, nameIndex)
	}
}
