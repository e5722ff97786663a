package app

// Kind identifies a server notification. The server emits these in order;
// the engine applies them one at a time to completion.
type Kind string

const (
	// Local hand.
	KindNewHand      Kind = "newHand"      // full hand replacement
	KindDrawCards    Kind = "drawCards"    // cards added, identity inline or via reveal cache
	KindCardRemoved  Kind = "cardRemoved"  // a specific card id leaves a hand
	KindCardReceived Kind = "cardReceived" // a specific card id joins a hand

	// Deck.
	KindDeckCount    Kind = "deckCount"    // explicit set wins over decrement
	KindDeckShuffled Kind = "deckShuffled" // discard reshuffled into the deck

	// Discard pile, routed through the optimistic tracker.
	KindCardPlayed       Kind = "cardPlayed"       // play shown, possibly still cancellable
	KindDiscardConfirmed Kind = "discardConfirmed" // play is now permanent
	KindPlayCancelled    Kind = "playCancelled"    // an interrupt nullified the play

	// Scoring.
	KindGoldenPotatoGained Kind = "goldenPotatoGained"
	KindGoldenPotatoLost   Kind = "goldenPotatoLost"
	KindScoreUpdate        Kind = "scoreUpdate" // explicit set

	// Seat counters.
	KindHandCountUpdate  Kind = "handCountUpdate"
	KindPlayerEliminated Kind = "playerEliminated"

	// Steal-shaped effects: four effect cards share one payload shape
	// (source player, target player, card).
	KindStealCard      Kind = "stealCard"
	KindSwapCard       Kind = "swapCard"
	KindRobCard        Kind = "robCard"
	KindPickpocketCard Kind = "pickpocketCard"

	// Reveal-only: populates the reveal cache for exactly one seat.
	KindCardRevealed Kind = "cardRevealed"

	// Phase control.
	KindPhaseChanged  Kind = "phaseChanged"
	KindActionsUpdate Kind = "actionButtonsUpdate"

	// Display cues with no view-model effect.
	KindAlarmTriggered  Kind = "alarmTriggered"
	KindInterruptPlayed Kind = "interruptPlayed"
	KindTurnEnded       Kind = "turnEnded"
	KindGameEnded       Kind = "gameEnded"
	KindTableTalk       Kind = "tableTalk"
)

// Notification is one inbound event: a kind plus its decoded payload.
type Notification struct {
	Kind    Kind
	Payload Payload
}
