package app

import (
	"goldenpotato/internal/domain"
	"goldenpotato/internal/ports"
)

// playerTurnHandler runs the local player's main turn: free-form card
// selection feeding the play validator, the conditional discard-and-draw
// action, and end-turn always offered last.
type playerTurnHandler struct {
	deps *phaseDeps

	args     PhaseArgs
	selected []int64
	play     *domain.Play
}

func (h *playerTurnHandler) OnEnter(args PhaseArgs) {
	h.args = args
	h.selected = nil
	h.deps.surface.RedrawHand(h.deps.view.Hand, false)
	h.render()
}

func (h *playerTurnHandler) OnLeave() {
	h.selected = nil
	h.play = nil
}

func (h *playerTurnHandler) UpdateActions(args PhaseArgs) {
	h.args = args
	h.render()
}

func (h *playerTurnHandler) ToggleCard(id int64) {
	h.selected = toggleID(h.selected, id)
	h.render()
}

// render re-evaluates the validator against the current selection and
// redraws the action row.
func (h *playerTurnHandler) render() {
	h.play = domain.EvaluateSelection(h.deps.view.Hand, h.selected)

	if !h.args.Active {
		h.deps.surface.ClearActions()
		return
	}

	var actions []ports.Action
	if h.play != nil {
		actions = append(actions, ports.Action{ID: "play", Label: h.play.Label, Enabled: true})
	}
	if h.args.CanDiscardAndDraw {
		actions = append(actions, ports.Action{ID: "discardDraw", Label: "Discard and draw", Enabled: true})
	}
	// End turn comes last, always.
	actions = append(actions, ports.Action{ID: "endTurn", Label: "End turn", Enabled: true})
	h.deps.surface.ShowActions(actions)
}

func (h *playerTurnHandler) Press(id string) {
	if !h.args.Active {
		return
	}
	switch id {
	case "play":
		h.submitPlay()
	case "discardDraw":
		if h.args.CanDiscardAndDraw {
			h.deps.actions.DiscardAndDraw()
		}
	case "endTurn":
		h.deps.actions.EndTurn()
	}
}

func (h *playerTurnHandler) submitPlay() {
	play := h.play
	if play == nil {
		return
	}

	switch play.Kind {
	case domain.PlaySingle:
		cardID := play.CardIDs[0]
		// Optimistic apply: show the card on the discard pile and pull it
		// from the hand before the server echoes the play. The broadcast
		// notification tolerates the card already being gone, and the
		// tracker rolls the pile back if an interrupt cancels the play.
		if card, ok := h.deps.view.HandCard(cardID); ok {
			h.deps.discard.Show(card)
			h.deps.view.RemoveCard(cardID)
			h.deps.view.SyncLocalHandCount()
		}
		h.deps.actions.PlayCard(cardID)
	default:
		h.deps.actions.PlayTrio(play.CardIDs)
	}

	h.selected = nil
	h.deps.surface.RedrawHand(h.deps.view.Hand, false)
	h.render()
}

// actionResolutionHandler only refreshes the hand display while a played
// effect resolves; no actions are available.
type actionResolutionHandler struct {
	deps *phaseDeps
}

func (h *actionResolutionHandler) OnEnter(args PhaseArgs) {
	h.deps.surface.RedrawHand(h.deps.view.Hand, false)
	h.deps.surface.ClearActions()
}

func (h *actionResolutionHandler) OnLeave() {}

func (h *actionResolutionHandler) UpdateActions(args PhaseArgs) {}

// toggleID flips membership of id in an ordered selection.
func toggleID(sel []int64, id int64) []int64 {
	for i, v := range sel {
		if v == id {
			return append(sel[:i], sel[i+1:]...)
		}
	}
	return append(sel, id)
}
