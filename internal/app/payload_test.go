package app

import "testing"

func TestFlexIntAcceptsNumberAndString(t *testing.T) {
	var p Payload
	data := []byte(`{"card_id": 42, "deckCount": "17", "delta": -3}`)
	if err := codec.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.CardID.Set || p.CardID.Value != 42 {
		t.Fatalf("card_id = %+v, want 42", p.CardID)
	}
	if !p.DeckCount.Set || p.DeckCount.Value != 17 {
		t.Fatalf("deckCount = %+v, want 17", p.DeckCount)
	}
	if !p.Delta.Set || p.Delta.Value != -3 {
		t.Fatalf("delta = %+v, want -3", p.Delta)
	}
}

func TestFlexIntMalformedIsAbsent(t *testing.T) {
	var p Payload
	data := []byte(`{"card_id": "not-a-number", "deckCount": [1], "handCount": null}`)
	if err := codec.Unmarshal(data, &p); err != nil {
		t.Fatalf("malformed numeric fields must not error: %v", err)
	}
	if p.CardID.Set || p.DeckCount.Set || p.HandCount.Set {
		t.Fatalf("malformed fields should be absent: %+v", p)
	}
}

func TestDecodePayloadGarbage(t *testing.T) {
	p := DecodePayload([]byte(`{{{`))
	if p.CardID.Set || len(p.Cards) != 0 {
		t.Fatalf("garbage payload should decode to the zero payload")
	}
	p = DecodePayload(nil)
	if p.CardID.Set {
		t.Fatalf("empty payload should decode to the zero payload")
	}
}

func TestCardPayloadRequiresID(t *testing.T) {
	cp := CardPayload{Type: "potato"}
	if _, ok := cp.Card(); ok {
		t.Fatalf("card without id should not convert")
	}
}

func TestDecodeArgsDefaults(t *testing.T) {
	args := DecodeArgs(nil)
	if !args.Active {
		t.Fatalf("absent eligibility should default to active")
	}
	args = DecodeArgs([]byte(`{"active": false, "targetCount": "2", "cardsToDiscard": 3}`))
	if args.Active {
		t.Fatalf("explicit inactive was dropped")
	}
	if args.TargetCount != 2 || args.CardsToDiscard != 3 {
		t.Fatalf("args = %+v", args)
	}
}
