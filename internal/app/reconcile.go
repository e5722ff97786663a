package app

import (
	"sync"

	"go.uber.org/zap"

	"goldenpotato/internal/domain"
	"goldenpotato/internal/ports"
)

// Engine applies inbound notifications to the shared view. Notifications
// are processed one at a time to completion in server-emission order; the
// canonical view is mutated before any presentation effect is handed to
// the surface, so a notification arriving mid-animation never observes an
// inconsistent intermediate state.
//
// The view has exactly two external actors: the socket read loop applying
// notifications and the input loop driving interactions. Both enter
// through the engine and share mu, so the view only ever has one mutator
// at a time.
type Engine struct {
	log     *zap.Logger
	view    *domain.View
	cache   *RevealCache
	discard *DiscardTracker
	machine *Machine
	surface ports.Surface

	mu sync.Mutex
}

// NewEngine wires the reconciliation engine over the shared view.
func NewEngine(log *zap.Logger, view *domain.View, cache *RevealCache, discard *DiscardTracker, machine *Machine, surface ports.Surface) *Engine {
	return &Engine{
		log:     log,
		view:    view,
		cache:   cache,
		discard: discard,
		machine: machine,
		surface: surface,
	}
}

// effects is the fixed notification table: one entry per kind.
var effects = map[Kind]func(*Engine, Payload){
	KindNewHand:            (*Engine).applyNewHand,
	KindDrawCards:          (*Engine).applyDrawCards,
	KindCardRemoved:        (*Engine).applyCardRemoved,
	KindCardReceived:       (*Engine).applyCardReceived,
	KindDeckCount:          (*Engine).applyDeckCount,
	KindDeckShuffled:       (*Engine).applyDeckShuffled,
	KindCardPlayed:         (*Engine).applyCardPlayed,
	KindDiscardConfirmed:   (*Engine).applyDiscardConfirmed,
	KindPlayCancelled:      (*Engine).applyPlayCancelled,
	KindGoldenPotatoGained: (*Engine).applyGoldenPotatoGained,
	KindGoldenPotatoLost:   (*Engine).applyGoldenPotatoLost,
	KindScoreUpdate:        (*Engine).applyScoreUpdate,
	KindHandCountUpdate:    (*Engine).applyHandCountUpdate,
	KindPlayerEliminated:   (*Engine).applyPlayerEliminated,
	KindStealCard:          (*Engine).applyStealShaped,
	KindSwapCard:           (*Engine).applyStealShaped,
	KindRobCard:            (*Engine).applyStealShaped,
	KindPickpocketCard:     (*Engine).applyStealShaped,
	KindCardRevealed:       (*Engine).applyCardRevealed,
	KindPhaseChanged:       (*Engine).applyPhaseChanged,
	KindActionsUpdate:      (*Engine).applyActionsUpdate,
	KindAlarmTriggered:     (*Engine).applyCue,
	KindInterruptPlayed:    (*Engine).applyCue,
	KindTurnEnded:          (*Engine).applyCue,
	KindGameEnded:          (*Engine).applyCue,
	KindTableTalk:          (*Engine).applyCue,
}

// Apply runs one notification against the view. Unknown kinds are ignored.
func (e *Engine) Apply(n Notification) {
	e.mu.Lock()
	defer e.mu.Unlock()
	effect, ok := effects[n.Kind]
	if !ok {
		e.log.Debug("ignoring unknown notification", zap.String("kind", string(n.Kind)))
		return
	}
	e.log.Debug("applying notification", zap.String("kind", string(n.Kind)))
	effect(e, n.Payload)
}

// Interaction entry points. Player input arrives on its own goroutine and
// takes the same lock as Apply before reaching the phase machine.

func (e *Engine) ToggleCard(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.ToggleCard(id)
}

func (e *Engine) ToggleSeat(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.ToggleSeat(id)
}

func (e *Engine) Press(actionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.Press(actionID)
}

func (e *Engine) PickName(cardType string, nameIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.PickName(cardType, nameIndex)
}

func (e *Engine) applyNewHand(p Payload) {
	hand := make([]domain.Card, 0, len(p.Cards))
	for _, cp := range p.Cards {
		if c, ok := cp.Card(); ok {
			hand = append(hand, c)
		}
	}
	e.view.ReplaceHand(hand)
	e.surface.RedrawHand(e.view.Hand, false)
}

// applyDrawCards adds drawn cards to the local hand. Identity comes inline
// when the draw is public, otherwise through the reveal cache; a card with
// neither is skipped — it cannot be displayed, an accepted information gap.
func (e *Engine) applyDrawCards(p Payload) {
	for _, cp := range p.Cards {
		if c, ok := cp.Card(); ok {
			e.view.AddCard(c)
		}
	}
	for _, id := range p.CardIDs {
		if !id.Set {
			continue
		}
		if c, ok := e.cache.Take(id.Value); ok {
			e.view.AddCard(c)
		} else {
			e.log.Debug("drawn card has no known identity", zap.Int64("card_id", id.Value))
		}
	}
	e.view.SyncLocalHandCount()
	if p.DeckCount.Set {
		e.view.SetDeckCount(p.DeckCount.Int(0))
	}
	e.surface.RedrawHand(e.view.Hand, false)
}

func (e *Engine) applyCardRemoved(p Payload) {
	if !p.CardID.Set {
		return
	}
	seat := p.PlayerID
	if p.TargetPlayerID.Set {
		seat = p.TargetPlayerID
	}
	if !seat.Set {
		return
	}
	if seat.Value == e.view.LocalSeat {
		e.view.RemoveCard(p.CardID.Value)
		e.view.SyncLocalHandCount()
		e.surface.RedrawHand(e.view.Hand, false)
		return
	}
	e.view.AddHandCount(seat.Value, -1)
}

func (e *Engine) applyCardReceived(p Payload) {
	seat := p.PlayerID
	if !seat.Set {
		return
	}
	if seat.Value != e.view.LocalSeat {
		e.view.AddHandCount(seat.Value, 1)
		return
	}
	if card, ok := e.resolveIdentity(p); ok {
		e.view.AddCard(card)
		e.view.SyncLocalHandCount()
		e.surface.RedrawHand(e.view.Hand, false)
	}
}

func (e *Engine) applyDeckCount(p Payload) {
	// An explicit set always wins over a decrement.
	if p.DeckCount.Set {
		e.view.SetDeckCount(p.DeckCount.Int(0))
		return
	}
	if p.Delta.Set {
		e.view.AddDeckCount(p.Delta.Int(0))
	}
}

func (e *Engine) applyDeckShuffled(p Payload) {
	if p.DeckCount.Set {
		e.view.SetDeckCount(p.DeckCount.Int(0))
	}
	// Through the tracker, not the view: a pending play must not survive
	// the shuffle and roll back to a card that left the pile.
	e.discard.Reset()
	e.surface.ShowStatus("The discard pile was shuffled back into the deck")
}

// applyCardPlayed is the broadcast half of a play: show it on the discard
// pile (the actor's own client may already have done so optimistically)
// and pull the card from the actor's hand.
func (e *Engine) applyCardPlayed(p Payload) {
	card, ok := p.InlineCard()
	if !ok {
		return
	}
	e.discard.Show(card)

	if !p.PlayerID.Set {
		return
	}
	if p.PlayerID.Value == e.view.LocalSeat {
		// Tolerated absence: the optimistic path usually removed it.
		e.view.RemoveCard(card.ID)
		e.view.SyncLocalHandCount()
		e.surface.RedrawHand(e.view.Hand, false)
		return
	}
	e.view.AddHandCount(p.PlayerID.Value, -1)
}

func (e *Engine) applyDiscardConfirmed(p Payload) {
	if card, ok := p.InlineCard(); ok {
		e.discard.Confirm(card)
	}
}

func (e *Engine) applyPlayCancelled(p Payload) {
	if !p.CardID.Set {
		return
	}
	e.discard.Cancel(p.CardID.Value)
	if p.PlayerID.Set && p.PlayerID.Value != e.view.LocalSeat {
		// The cancelled card returns to the actor's hidden hand.
		e.view.AddHandCount(p.PlayerID.Value, 1)
	}
}

func (e *Engine) applyGoldenPotatoGained(p Payload) {
	e.applyScoreDelta(p, 1)
}

func (e *Engine) applyGoldenPotatoLost(p Payload) {
	e.applyScoreDelta(p, -1)
}

func (e *Engine) applyScoreDelta(p Payload, sign int) {
	if !p.PlayerID.Set {
		return
	}
	delta := p.Delta.Int(1)
	if delta < 0 {
		delta = -delta
	}
	e.view.AddGoldenPotatoes(p.PlayerID.Value, sign*delta)
}

func (e *Engine) applyScoreUpdate(p Payload) {
	if !p.PlayerID.Set || !p.GoldenPotatoes.Set {
		return
	}
	e.view.SetGoldenPotatoes(p.PlayerID.Value, p.GoldenPotatoes.Int(0))
}

func (e *Engine) applyHandCountUpdate(p Payload) {
	if !p.PlayerID.Set || !p.HandCount.Set {
		return
	}
	e.view.SetHandCount(p.PlayerID.Value, p.HandCount.Int(0))
}

func (e *Engine) applyPlayerEliminated(p Payload) {
	if !p.PlayerID.Set {
		return
	}
	e.view.SetHandCount(p.PlayerID.Value, 0)
	e.surface.ShowStatus("A player was eliminated")
}

// applyStealShaped covers the four effect cards that move one card from a
// target to a source seat. Only the two involved seats' views change; the
// card's identity stays hidden from everyone else.
func (e *Engine) applyStealShaped(p Payload) {
	if !p.PlayerID.Set || !p.TargetPlayerID.Set {
		return
	}
	source := p.PlayerID.Value
	target := p.TargetPlayerID.Value

	if target == e.view.LocalSeat && p.CardID.Set {
		e.view.RemoveCard(p.CardID.Value)
	}
	if source == e.view.LocalSeat {
		if card, ok := e.resolveIdentity(p); ok {
			e.view.AddCard(card)
		} else if p.CardID.Set {
			e.log.Debug("stolen card has no known identity", zap.Int64("card_id", p.CardID.Value))
		}
	}

	e.view.AddHandCount(target, -1)
	e.view.AddHandCount(source, 1)
	e.view.SyncLocalHandCount()
	e.surface.RedrawHand(e.view.Hand, false)
}

func (e *Engine) applyCardRevealed(p Payload) {
	if card, ok := p.InlineCard(); ok {
		e.cache.Put(card)
	}
}

func (e *Engine) applyPhaseChanged(p Payload) {
	e.view.Phase = p.Phase
	e.machine.SetPhase(p.Phase, p.Args)
}

func (e *Engine) applyActionsUpdate(p Payload) {
	e.machine.Refresh(p.Args)
}

// applyCue handles kinds that exist purely for other seats' display cues
// or logging; the view is untouched.
func (e *Engine) applyCue(p Payload) {}

// resolveIdentity finds a card's identity from the payload itself or the
// reveal cache. ok is false when neither knows the card.
func (e *Engine) resolveIdentity(p Payload) (domain.Card, bool) {
	if card, ok := p.InlineCard(); ok {
		return card, true
	}
	if p.CardID.Set {
		if card, ok := e.cache.Take(p.CardID.Value); ok {
			return card, true
		}
	}
	return domain.Card{}, false
}
