package domain

import "fmt"

// PlayKind classifies a legal multi-card play.
type PlayKind int

const (
	PlayInvalid PlayKind = iota
	// PlaySingle is one card played on its own.
	PlaySingle
	// PlayTrioPotato is three cards forming a same-name potato set,
	// wildcards substituting for at most two of them.
	PlayTrioPotato
	// PlayTrioValue is three cards that all decode to value 3.
	PlayTrioValue
)

// Play describes a legal play derived from the current selection. It is
// produced fresh on every selection change and never persisted.
type Play struct {
	Kind    PlayKind
	CardIDs []int64
	Label   string
}

// EvaluateSelection decides whether the selected card ids form a legal play
// against the given hand. Ids not present in the hand are dropped (a stale
// selection is tolerated, not an error). Returns nil when no legal play
// exists. Pure; must be re-run on every selection change.
func EvaluateSelection(hand []Card, selected []int64) *Play {
	cards := resolveSelection(hand, selected)

	switch len(cards) {
	case 1:
		return evaluateSingle(cards[0])
	case 3:
		return evaluateTrio(cards)
	default:
		return nil
	}
}

func resolveSelection(hand []Card, selected []int64) []Card {
	byID := make(map[int64]Card, len(hand))
	for _, c := range hand {
		byID[c.ID] = c
	}
	cards := make([]Card, 0, len(selected))
	for _, id := range selected {
		if c, ok := byID[id]; ok {
			cards = append(cards, c)
		}
	}
	return cards
}

func evaluateSingle(c Card) *Play {
	if c.Type == CardPotato || c.Type == CardWildcard {
		return nil
	}
	if c.IsInterrupt() {
		// Interrupts are only playable in the reaction phase.
		return nil
	}
	label := fmt.Sprintf("Play %s", c.Name())
	if c.Decoded().Alarm {
		label = fmt.Sprintf("Play %s and end your turn", c.Name())
	}
	return &Play{Kind: PlaySingle, CardIDs: []int64{c.ID}, Label: label}
}

func evaluateTrio(cards []Card) *Play {
	ids := make([]int64, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	potatoes := 0
	wildcards := 0
	for _, c := range cards {
		switch c.Type {
		case CardPotato:
			potatoes++
		case CardWildcard:
			wildcards++
		}
	}

	if wildcards == 3 {
		return &Play{Kind: PlayTrioPotato, CardIDs: ids, Label: "Play a wildcard trio"}
	}

	if potatoes+wildcards == 3 && wildcards <= 2 && potatoes >= 1 {
		if name, ok := sharedPotatoName(cards); ok {
			return &Play{
				Kind:    PlayTrioPotato,
				CardIDs: ids,
				Label:   fmt.Sprintf("Play three %s", PotatoName(name)),
			}
		}
	}

	if allValueThree(cards) {
		return &Play{Kind: PlayTrioValue, CardIDs: ids, Label: "Play three cards of value 3"}
	}

	return nil
}

// sharedPotatoName returns the name index common to every potato card in
// the set, or false when the potatoes disagree.
func sharedPotatoName(cards []Card) (int, bool) {
	name := -1
	for _, c := range cards {
		if c.Type != CardPotato {
			continue
		}
		idx := c.Decoded().NameIndex
		if name == -1 {
			name = idx
			continue
		}
		if idx != name {
			return 0, false
		}
	}
	return name, name != -1
}

func allValueThree(cards []Card) bool {
	for _, c := range cards {
		if c.Decoded().Value != 3 {
			return false
		}
	}
	return true
}
