package app

import (
	"go.uber.org/zap"

	"goldenpotato/internal/domain"
)

// DiscardTracker manages the discard pile's visible top card through the
// optimistic-apply window of a play. A play is shown immediately — by the
// actor's own optimistic path or by the broadcast notification, whichever
// arrives first — and stays revocable until the server either confirms it
// permanent or cancels it via an interrupt.
type DiscardTracker struct {
	log  *zap.Logger
	view *domain.View

	pending *pendingDiscard
}

// pendingDiscard is the single in-flight record: at most one exists.
type pendingDiscard struct {
	cardID      int64
	previousTop *domain.Card
}

// NewDiscardTracker constructs a tracker bound to the shared view.
func NewDiscardTracker(log *zap.Logger, view *domain.View) *DiscardTracker {
	return &DiscardTracker{log: log, view: view}
}

// Show sets the displayed top card and remembers the previous one as the
// rollback target. Showing the same card id again while it is pending is
// a no-op: the optimistic path and the broadcast path both call Show for
// the same play. A different card superseding a still-pending one is
// last-writer-wins.
func (t *DiscardTracker) Show(c domain.Card) {
	if t.pending != nil {
		if t.pending.cardID == c.ID {
			return
		}
		t.log.Debug("pending discard superseded",
			zap.Int64("previous_card_id", t.pending.cardID),
			zap.Int64("card_id", c.ID))
	}
	t.pending = &pendingDiscard{cardID: c.ID, previousTop: t.view.DiscardTop}
	shown := c
	t.view.DiscardTop = &shown
}

// Confirm makes the shown card permanent. When no matching pending record
// exists the card is set outright: an observer may see the permanent move
// without having seen the play.
func (t *DiscardTracker) Confirm(c domain.Card) {
	if t.pending != nil && t.pending.cardID == c.ID {
		t.pending = nil
		return
	}
	shown := c
	t.view.DiscardTop = &shown
}

// Cancel reverts the display to the remembered card when the cancelled id
// matches the pending play. A cancel for an unknown id is a no-op.
func (t *DiscardTracker) Cancel(cardID int64) {
	if t.pending == nil || t.pending.cardID != cardID {
		return
	}
	t.view.DiscardTop = t.pending.previousTop
	t.pending = nil
}

// Reset clears the display and drops any pending record. Used when the
// pile itself goes away, e.g. shuffled back into the deck: a later cancel
// of the dropped play has nothing left to restore.
func (t *DiscardTracker) Reset() {
	t.pending = nil
	t.view.DiscardTop = nil
}

// Pending reports whether a play is still revocable.
func (t *DiscardTracker) Pending() bool {
	return t.pending != nil
}
