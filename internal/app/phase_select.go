package app

import (
	"fmt"
	"strconv"
	"strings"

	"goldenpotato/internal/ports"
)

// targetSelectionHandler renders one toggle per selectable seat. Selection
// is ordered; toggling on appends while under the cap, toggling off
// removes. The selection auto-submits at targetCount unless the phase
// requires multiple targets, in which case an explicit confirm appears
// only at that threshold.
type targetSelectionHandler struct {
	deps *phaseDeps

	args  PhaseArgs
	seats []int64
}

func (h *targetSelectionHandler) OnEnter(args PhaseArgs) {
	h.args = args
	h.seats = nil
	h.render()
}

func (h *targetSelectionHandler) OnLeave() {
	h.seats = nil
}

func (h *targetSelectionHandler) UpdateActions(args PhaseArgs) {
	h.args = args
	h.render()
}

func (h *targetSelectionHandler) ToggleSeat(id int64) {
	if !h.args.Active {
		return
	}
	if i := indexOf(h.seats, id); i >= 0 {
		h.seats = append(h.seats[:i], h.seats[i+1:]...)
		h.render()
		return
	}
	if !containsID(h.args.SelectablePlayers, id) || len(h.seats) >= h.args.TargetCount {
		return
	}
	h.seats = append(h.seats, id)

	if len(h.seats) == h.args.TargetCount && !h.args.RequiresMultipleTargets {
		h.submit()
		return
	}
	h.render()
}

func (h *targetSelectionHandler) Press(id string) {
	if !h.args.Active {
		return
	}
	if seat, ok := strings.CutPrefix(id, "target:"); ok {
		if n, err := strconv.ParseInt(seat, 10, 64); err == nil {
			h.ToggleSeat(n)
		}
		return
	}
	if id == "confirmTargets" && h.args.RequiresMultipleTargets && len(h.seats) == h.args.TargetCount {
		h.submit()
	}
}

func (h *targetSelectionHandler) submit() {
	h.deps.actions.SelectTargets(h.seats)
	h.seats = nil
	// Redraw with the cleared selection; stale "Deselect" toggles must not
	// linger until the server's next refresh.
	h.render()
}

func (h *targetSelectionHandler) render() {
	if !h.args.Active {
		h.deps.surface.ClearActions()
		return
	}
	var actions []ports.Action
	for _, seat := range h.args.SelectablePlayers {
		selected := indexOf(h.seats, seat) >= 0
		label := fmt.Sprintf("Target seat %d", seat)
		if selected {
			label = fmt.Sprintf("Deselect seat %d", seat)
		}
		actions = append(actions, ports.Action{
			ID:      fmt.Sprintf("target:%d", seat),
			Label:   label,
			Enabled: selected || len(h.seats) < h.args.TargetCount,
		})
	}
	if h.args.RequiresMultipleTargets && len(h.seats) == h.args.TargetCount {
		actions = append(actions, ports.Action{ID: "confirmTargets", Label: "Confirm targets", Enabled: true})
	}
	h.deps.surface.ShowActions(actions)
}

// cardSelectionHandler binds one choice per server-issued token — revealed
// cards or face-down backs — and submits the first one picked.
type cardSelectionHandler struct {
	deps *phaseDeps

	args PhaseArgs
}

func (h *cardSelectionHandler) OnEnter(args PhaseArgs) {
	h.args = args
	h.render()
}

func (h *cardSelectionHandler) OnLeave() {
	h.args = PhaseArgs{}
	h.deps.surface.ClearActions()
}

func (h *cardSelectionHandler) UpdateActions(args PhaseArgs) {
	h.args = args
	h.render()
}

func (h *cardSelectionHandler) render() {
	if !h.args.Active {
		h.deps.surface.ClearActions()
		return
	}
	var actions []ports.Action
	for _, choice := range h.args.RevealedCards {
		label := "Take a card"
		if card, ok := choice.Card.Card(); ok {
			label = fmt.Sprintf("Take %s", card.Name())
		}
		actions = append(actions, ports.Action{
			ID:      "choose:" + choice.Token,
			Label:   label,
			Enabled: true,
		})
	}
	for i, token := range h.args.CardBacks {
		actions = append(actions, ports.Action{
			ID:      "choose:" + token,
			Label:   fmt.Sprintf("Face-down card %d", i+1),
			Enabled: true,
		})
	}
	// A positional pick over the target's hand, when the server presents
	// no tokens at all.
	if len(actions) == 0 {
		for i := 0; i < h.args.HandSize; i++ {
			actions = append(actions, ports.Action{
				ID:      fmt.Sprintf("choosePos:%d", i),
				Label:   fmt.Sprintf("Card %d", i+1),
				Enabled: true,
			})
		}
	}
	h.deps.surface.ShowActions(actions)
}

func (h *cardSelectionHandler) Press(id string) {
	if !h.args.Active {
		return
	}
	if token, ok := strings.CutPrefix(id, "choose:"); ok {
		h.deps.actions.SelectCardByToken(token)
		return
	}
	if pos, ok := strings.CutPrefix(id, "choosePos:"); ok {
		if n, err := strconv.Atoi(pos); err == nil {
			h.deps.actions.SelectCardByPosition(n)
		}
	}
}

// cardNameSelectionHandler gathers a (card type, name) pair from the
// server-supplied catalog; confirm unlocks only once both are chosen.
type cardNameSelectionHandler struct {
	deps *phaseDeps

	args       PhaseArgs
	chosenType string
	chosenName int
}

func (h *cardNameSelectionHandler) OnEnter(args PhaseArgs) {
	h.args = args
	h.reset()
	h.render()
}

func (h *cardNameSelectionHandler) OnLeave() {
	h.reset()
}

func (h *cardNameSelectionHandler) UpdateActions(args PhaseArgs) {
	h.args = args
	h.render()
}

func (h *cardNameSelectionHandler) reset() {
	h.chosenType = ""
	h.chosenName = -1
}

// PickName records a catalog choice. A negative nameIndex picks only the
// card type; picking a new type clears any previous name choice.
func (h *cardNameSelectionHandler) PickName(cardType string, nameIndex int) {
	if !h.args.Active {
		return
	}
	group, ok := h.group(cardType)
	if !ok {
		return
	}
	if cardType != h.chosenType {
		h.chosenType = cardType
		h.chosenName = -1
	}
	if nameIndex >= 0 && containsName(group, nameIndex) {
		h.chosenName = nameIndex
	}
	h.render()
}

func (h *cardNameSelectionHandler) group(cardType string) (NameGroup, bool) {
	for _, g := range h.args.CardNames {
		if g.CardType == cardType {
			return g, true
		}
	}
	return NameGroup{}, false
}

func (h *cardNameSelectionHandler) render() {
	if !h.args.Active {
		h.deps.surface.ClearActions()
		return
	}
	ready := h.chosenType != "" && h.chosenName >= 0
	h.deps.surface.ShowActions([]ports.Action{
		{ID: "confirmName", Label: "Confirm card name", Enabled: ready},
	})
}

func (h *cardNameSelectionHandler) Press(id string) {
	if id != "confirmName" || !h.args.Active {
		return
	}
	if h.chosenType == "" || h.chosenName < 0 {
		return
	}
	h.deps.actions.SelectCardName(h.chosenType, h.chosenName)
}

func containsName(g NameGroup, nameIndex int) bool {
	for _, n := range g.NameIndexes {
		if n.Set && int(n.Value) == nameIndex {
			return true
		}
	}
	return false
}

func indexOf(ids []int64, id int64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func containsID(ids []int64, id int64) bool {
	return indexOf(ids, id) >= 0
}
