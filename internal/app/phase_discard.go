package app

import (
	"fmt"

	"goldenpotato/internal/ports"
)

// discardPhaseHandler collects a forced discard: confirm is enabled
// exactly when the selected count equals the server-declared requirement.
type discardPhaseHandler struct {
	deps *phaseDeps

	args     PhaseArgs
	selected []int64
}

func (h *discardPhaseHandler) OnEnter(args PhaseArgs) {
	h.args = args
	h.selected = nil
	h.render()
}

func (h *discardPhaseHandler) OnLeave() {
	h.selected = nil
}

func (h *discardPhaseHandler) UpdateActions(args PhaseArgs) {
	h.args = args
	h.render()
}

func (h *discardPhaseHandler) ToggleCard(id int64) {
	if !h.args.Active {
		return
	}
	if _, ok := h.deps.view.HandCard(id); !ok {
		return
	}
	h.selected = toggleID(h.selected, id)
	h.render()
}

func (h *discardPhaseHandler) render() {
	if !h.args.Active {
		h.deps.surface.ClearActions()
		return
	}
	ready := h.args.CardsToDiscard > 0 && len(h.selected) == h.args.CardsToDiscard
	h.deps.surface.ShowActions([]ports.Action{
		{
			ID:      "confirmDiscard",
			Label:   fmt.Sprintf("Discard %d cards", h.args.CardsToDiscard),
			Enabled: ready,
		},
	})
}

func (h *discardPhaseHandler) Press(id string) {
	if id != "confirmDiscard" || !h.args.Active {
		return
	}
	if h.args.CardsToDiscard <= 0 || len(h.selected) != h.args.CardsToDiscard {
		return
	}
	h.deps.actions.DiscardCards(h.selected)
	h.selected = nil
}
