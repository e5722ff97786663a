package app

import (
	"encoding/json"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"goldenpotato/internal/domain"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// FlexInt is a numeric notification field that may arrive as a JSON number,
// a numeric string, or not at all. A field that fails to parse is treated
// as absent; decoding never fails.
type FlexInt struct {
	Value int64
	Set   bool
}

// Int returns the value, or fallback when the field is absent.
func (f FlexInt) Int(fallback int) int {
	if !f.Set {
		return fallback
	}
	return int(f.Value)
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else leaves
// the field unset.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	f.Value, f.Set = 0, false
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	s := string(data)
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return nil
		}
		s = unquoted
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	f.Value, f.Set = n, true
	return nil
}

// CardPayload is a card's identity as it appears inside notification
// payloads. Every field is optional.
type CardPayload struct {
	ID      FlexInt `json:"id"`
	Type    string  `json:"type"`
	TypeArg FlexInt `json:"type_arg"`
}

// Card converts the payload into a domain card. ok is false when the
// payload carries no usable identity.
func (cp CardPayload) Card() (domain.Card, bool) {
	if !cp.ID.Set {
		return domain.Card{}, false
	}
	return domain.Card{
		ID:      cp.ID.Value,
		Type:    domain.CardType(cp.Type),
		TypeArg: cp.TypeArg.Int(0),
	}, true
}

// Payload is the union of fields any notification may carry. Fields are
// read defensively; missing or malformed fields skip the affected
// sub-update rather than erroring.
type Payload struct {
	CardID         FlexInt         `json:"card_id"`
	CardType       string          `json:"card_type"`
	CardTypeArg    FlexInt         `json:"card_type_arg"`
	PlayerID       FlexInt         `json:"player_id"`
	TargetPlayerID FlexInt         `json:"target_player_id"`
	DeckCount      FlexInt         `json:"deckCount"`
	GoldenPotatoes FlexInt         `json:"golden_potatoes"`
	Delta          FlexInt         `json:"delta"`
	HandCount      FlexInt         `json:"handCount"`
	CardIDs        []FlexInt       `json:"card_ids"`
	Cards          []CardPayload   `json:"cards"`
	SelectToken    string          `json:"selectToken"`
	Phase          string          `json:"phase"`
	Args           json.RawMessage `json:"args"`
}

// InlineCard builds a card from the payload's flat identity fields.
func (p Payload) InlineCard() (domain.Card, bool) {
	if !p.CardID.Set || p.CardType == "" {
		return domain.Card{}, false
	}
	return domain.Card{
		ID:      p.CardID.Value,
		Type:    domain.CardType(p.CardType),
		TypeArg: p.CardTypeArg.Int(0),
	}, true
}

// DecodePayload parses raw notification data. A payload that cannot be
// parsed at all yields the zero Payload: every sub-update then sees its
// fields as absent.
func DecodePayload(data []byte) Payload {
	var p Payload
	if len(data) == 0 {
		return p
	}
	if err := codec.Unmarshal(data, &p); err != nil {
		return Payload{}
	}
	return p
}
