package app

import (
	"testing"

	"go.uber.org/zap"

	"goldenpotato/internal/domain"
)

func discardCard(id int64) domain.Card {
	return domain.Card{ID: id, Type: domain.CardAction, TypeArg: domain.Encode(3, 1, false)}
}

func TestOptimisticThenCancelledRestoresPriorTop(t *testing.T) {
	view := domain.NewView(1)
	prior := discardCard(10)
	view.DiscardTop = &prior
	tracker := NewDiscardTracker(zap.NewNop(), view)

	tracker.Show(discardCard(11))
	if view.DiscardTop == nil || view.DiscardTop.ID != 11 {
		t.Fatalf("top = %+v, want card 11", view.DiscardTop)
	}

	tracker.Cancel(11)
	if view.DiscardTop == nil || view.DiscardTop.ID != 10 {
		t.Fatalf("top = %+v, want the prior card 10 restored", view.DiscardTop)
	}
	if tracker.Pending() {
		t.Fatalf("pending state not cleared after cancel")
	}
}

func TestOptimisticThenConfirmedIsPermanent(t *testing.T) {
	view := domain.NewView(1)
	tracker := NewDiscardTracker(zap.NewNop(), view)

	tracker.Show(discardCard(11))
	tracker.Confirm(discardCard(11))
	if view.DiscardTop == nil || view.DiscardTop.ID != 11 {
		t.Fatalf("top = %+v, want card 11 kept", view.DiscardTop)
	}
	if tracker.Pending() {
		t.Fatalf("pending state not cleared after confirm")
	}

	// A cancel arriving after confirmation must not roll back.
	tracker.Cancel(11)
	if view.DiscardTop == nil || view.DiscardTop.ID != 11 {
		t.Fatalf("confirmed card was rolled back")
	}
}

func TestShowIsIdempotentForSameCard(t *testing.T) {
	view := domain.NewView(1)
	prior := discardCard(10)
	view.DiscardTop = &prior
	tracker := NewDiscardTracker(zap.NewNop(), view)

	// Optimistic path and broadcast path both show the same play.
	tracker.Show(discardCard(11))
	tracker.Show(discardCard(11))
	tracker.Cancel(11)
	if view.DiscardTop == nil || view.DiscardTop.ID != 10 {
		t.Fatalf("double show lost the rollback target: top = %+v", view.DiscardTop)
	}
}

func TestSecondPendingSupersedesFirst(t *testing.T) {
	view := domain.NewView(1)
	tracker := NewDiscardTracker(zap.NewNop(), view)

	tracker.Show(discardCard(11))
	tracker.Show(discardCard(12))

	// Cancelling the superseded play does nothing.
	tracker.Cancel(11)
	if view.DiscardTop == nil || view.DiscardTop.ID != 12 {
		t.Fatalf("top = %+v, want card 12", view.DiscardTop)
	}

	// Cancelling the live pending play rolls back to card 11, the
	// last-writer-wins rollback target.
	tracker.Cancel(12)
	if view.DiscardTop == nil || view.DiscardTop.ID != 11 {
		t.Fatalf("top = %+v, want card 11", view.DiscardTop)
	}
}

func TestResetDropsPendingWithDisplay(t *testing.T) {
	view := domain.NewView(1)
	tracker := NewDiscardTracker(zap.NewNop(), view)

	tracker.Show(discardCard(11))
	tracker.Reset()
	if view.DiscardTop != nil {
		t.Fatalf("top = %+v, want empty after reset", view.DiscardTop)
	}
	if tracker.Pending() {
		t.Fatalf("pending state survived reset")
	}

	// A cancel for the dropped play has nothing to restore.
	tracker.Cancel(11)
	if view.DiscardTop != nil {
		t.Fatalf("cancel after reset resurfaced card: %+v", view.DiscardTop)
	}
}

func TestConfirmWithoutPendingSetsTop(t *testing.T) {
	view := domain.NewView(1)
	tracker := NewDiscardTracker(zap.NewNop(), view)

	tracker.Confirm(discardCard(20))
	if view.DiscardTop == nil || view.DiscardTop.ID != 20 {
		t.Fatalf("top = %+v, want card 20", view.DiscardTop)
	}
}
