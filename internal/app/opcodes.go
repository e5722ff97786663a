package app

// Op codes for client actions and server notifications on the match socket.
const (
	// Client -> Server
	OpPlayCard        int64 = 1
	OpPlayTrio        int64 = 2
	OpEndTurn         int64 = 3
	OpDiscardAndDraw  int64 = 4
	OpSkipReaction    int64 = 5
	OpSelectTargets   int64 = 6
	OpDiscardCards    int64 = 7
	OpSelectCardToken int64 = 8
	OpSelectCardPos   int64 = 9
	OpSelectCardName  int64 = 10

	// Server -> Client notifications
	OpNewHand            int64 = 101
	OpDrawCards          int64 = 102
	OpCardRemoved        int64 = 103
	OpCardReceived       int64 = 104
	OpDeckCount          int64 = 105
	OpDeckShuffled       int64 = 106
	OpCardPlayed         int64 = 107
	OpDiscardConfirmed   int64 = 108
	OpPlayCancelled      int64 = 109
	OpGoldenPotatoGained int64 = 110
	OpGoldenPotatoLost   int64 = 111
	OpScoreUpdate        int64 = 112
	OpHandCountUpdate    int64 = 113
	OpPlayerEliminated   int64 = 114
	OpStealCard          int64 = 115
	OpSwapCard           int64 = 116
	OpRobCard            int64 = 117
	OpPickpocketCard     int64 = 118
	OpCardRevealed       int64 = 119
	OpPhaseChanged       int64 = 120
	OpActionsUpdate      int64 = 121
	OpAlarmTriggered     int64 = 122
	OpInterruptPlayed    int64 = 123
	OpTurnEnded          int64 = 124
	OpGameEnded          int64 = 125
	OpTableTalk          int64 = 126
)

var kindByOpCode = map[int64]Kind{
	OpNewHand:            KindNewHand,
	OpDrawCards:          KindDrawCards,
	OpCardRemoved:        KindCardRemoved,
	OpCardReceived:       KindCardReceived,
	OpDeckCount:          KindDeckCount,
	OpDeckShuffled:       KindDeckShuffled,
	OpCardPlayed:         KindCardPlayed,
	OpDiscardConfirmed:   KindDiscardConfirmed,
	OpPlayCancelled:      KindPlayCancelled,
	OpGoldenPotatoGained: KindGoldenPotatoGained,
	OpGoldenPotatoLost:   KindGoldenPotatoLost,
	OpScoreUpdate:        KindScoreUpdate,
	OpHandCountUpdate:    KindHandCountUpdate,
	OpPlayerEliminated:   KindPlayerEliminated,
	OpStealCard:          KindStealCard,
	OpSwapCard:           KindSwapCard,
	OpRobCard:            KindRobCard,
	OpPickpocketCard:     KindPickpocketCard,
	OpCardRevealed:       KindCardRevealed,
	OpPhaseChanged:       KindPhaseChanged,
	OpActionsUpdate:      KindActionsUpdate,
	OpAlarmTriggered:     KindAlarmTriggered,
	OpInterruptPlayed:    KindInterruptPlayed,
	OpTurnEnded:          KindTurnEnded,
	OpGameEnded:          KindGameEnded,
	OpTableTalk:          KindTableTalk,
}

// KindForOpCode maps a match-data opcode to a notification kind. Unknown
// opcodes return an empty kind, which the engine ignores.
func KindForOpCode(op int64) Kind {
	return kindByOpCode[op]
}

// DecodeNotification builds a Notification from raw match data.
func DecodeNotification(op int64, data []byte) Notification {
	return Notification{Kind: KindForOpCode(op), Payload: DecodePayload(data)}
}
