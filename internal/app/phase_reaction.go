package app

import (
	"time"

	"goldenpotato/internal/ports"
)

// reactionHandler runs the timed reaction window after another player's
// play. Interrupt cards in the hand are highlighted and clicking one plays
// it; otherwise the player can skip, and the timer skips for them at zero.
type reactionHandler struct {
	deps *phaseDeps
	// fallback is used when the server omits reactionSeconds from the
	// phase args; the server-supplied value is canonical when present.
	fallback time.Duration

	args PhaseArgs
}

func (h *reactionHandler) OnEnter(args PhaseArgs) {
	h.args = args
	h.deps.timer.Start(h.duration(args))
	h.render()
}

func (h *reactionHandler) OnLeave() {
	h.deps.timer.Stop()
	h.deps.surface.RedrawHand(h.deps.view.Hand, false)
	h.deps.surface.ClearActions()
}

func (h *reactionHandler) UpdateActions(args PhaseArgs) {
	h.args = args
	if !args.Active {
		// This seat already acted in a simultaneous-reaction phase while
		// others continue; the pending auto-skip must not fire for it.
		h.deps.timer.Stop()
	}
	h.render()
}

func (h *reactionHandler) duration(args PhaseArgs) time.Duration {
	if args.ReactionSeconds.Set && args.ReactionSeconds.Value > 0 {
		return time.Duration(args.ReactionSeconds.Value) * time.Second
	}
	return h.fallback
}

func (h *reactionHandler) render() {
	h.deps.surface.RedrawHand(h.deps.view.Hand, true)
	if !h.args.Active {
		h.deps.surface.ClearActions()
		return
	}
	h.deps.surface.ShowActions([]ports.Action{
		{ID: "skip", Label: "Skip", Enabled: true},
	})
}

// ToggleCard plays an interrupt card when clicked. The play shares the
// timer's one-shot flag with skip so a racing auto-skip cannot also fire.
func (h *reactionHandler) ToggleCard(id int64) {
	if !h.args.Active {
		return
	}
	card, ok := h.deps.view.HandCard(id)
	if !ok || !card.IsInterrupt() {
		return
	}
	if h.deps.timer.TrySubmit() {
		h.deps.actions.PlayCard(id)
	}
}

func (h *reactionHandler) Press(id string) {
	if id != "skip" || !h.args.Active {
		return
	}
	if h.deps.timer.TrySubmit() {
		h.deps.actions.SkipReaction()
	}
}
