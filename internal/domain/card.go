package domain

import "fmt"

// CardType identifies the broad category of a card as declared by the server.
type CardType string

const (
	// CardPotato is a named potato card; three of a name form a trio.
	CardPotato CardType = "potato"
	// CardWildcard substitutes for any potato name inside a potato trio.
	CardWildcard CardType = "wildcard"
	// CardAction is a playable effect card.
	CardAction CardType = "action"
	// CardGoldenPotato is the scoring token type.
	CardGoldenPotato CardType = "golden_potato"
)

// Card is a single card in a player's view. Identity is ID; the display
// name, value and alarm flag are packed into TypeArg.
type Card struct {
	ID      int64    `json:"id"`
	Type    CardType `json:"type"`
	TypeArg int      `json:"type_arg"`
}

// Decoded holds the three sub-fields packed into a card's TypeArg. It is
// derived on demand and never stored.
type Decoded struct {
	NameIndex int
	Value     int
	Alarm     bool
}

// Decode unpacks a TypeArg. The low two digits carry only the alarm flag
// (value*100 always has zero low digits), so the fields never alias.
func Decode(typeArg int) Decoded {
	return Decoded{
		NameIndex: typeArg / 10000,
		Value:     (typeArg % 10000) / 100,
		Alarm:     typeArg%100 == 1,
	}
}

// Encode is the exact inverse of Decode. Callers must pass nameIndex >= 0.
func Encode(nameIndex, value int, alarm bool) int {
	arg := nameIndex*10000 + value*100
	if alarm {
		arg++
	}
	return arg
}

// Decoded unpacks the card's TypeArg.
func (c Card) Decoded() Decoded {
	return Decode(c.TypeArg)
}

// Interrupt name indexes within the action card family. An interrupt is
// only playable during the reaction phase, to cancel another play.
const (
	interruptNameAlarmClock = 1
	interruptNameOvenMitt   = 2
)

// IsInterrupt reports whether the card is an interrupt action card.
func (c Card) IsInterrupt() bool {
	if c.Type != CardAction {
		return false
	}
	idx := c.Decoded().NameIndex
	return idx == interruptNameAlarmClock || idx == interruptNameOvenMitt
}

// Fallback display names. Localization happens outside the core; these are
// the neutral labels used by play descriptions and the terminal renderer.
var potatoNames = []string{
	"Russet", "Yukon", "Fingerling", "Purple Majesty", "Red Bliss",
	"Kennebec", "Vitelotte", "Maris Piper",
}

var actionNames = []string{
	"Mash", "Alarm Clock", "Oven Mitt", "Hot Swap", "Peeler",
	"Harvest", "Second Helping", "Compost",
}

// PotatoName returns the display name for a potato name index.
func PotatoName(idx int) string {
	if idx >= 0 && idx < len(potatoNames) {
		return potatoNames[idx]
	}
	return fmt.Sprintf("Potato #%d", idx)
}

// ActionName returns the display name for an action name index.
func ActionName(idx int) string {
	if idx >= 0 && idx < len(actionNames) {
		return actionNames[idx]
	}
	return fmt.Sprintf("Action #%d", idx)
}

// Name returns the card's display name.
func (c Card) Name() string {
	d := c.Decoded()
	switch c.Type {
	case CardPotato:
		return PotatoName(d.NameIndex)
	case CardWildcard:
		return "Wildcard"
	case CardAction:
		return ActionName(d.NameIndex)
	case CardGoldenPotato:
		return "Golden Potato"
	}
	return fmt.Sprintf("Card #%d", c.ID)
}
