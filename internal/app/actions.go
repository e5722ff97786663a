package app

import (
	"go.uber.org/zap"

	"goldenpotato/internal/ports"
)

// ActionSender builds outbound action requests and hands them to the
// dispatcher. Requests are fire-and-forget with no client-side retry; the
// server is the sole authority and re-validates everything.
type ActionSender struct {
	log        *zap.Logger
	dispatcher ports.Dispatcher
}

// NewActionSender constructs a sender over the given dispatcher.
func NewActionSender(log *zap.Logger, dispatcher ports.Dispatcher) *ActionSender {
	return &ActionSender{log: log, dispatcher: dispatcher}
}

func (s *ActionSender) send(op int64, name string, payload any) {
	data, err := codec.Marshal(payload)
	if err != nil {
		s.log.Error("failed to marshal action payload", zap.String("action", name), zap.Error(err))
		return
	}
	req := ports.ActionRequest{OpCode: op, Name: name, Payload: data}
	if err := s.dispatcher.Dispatch(req); err != nil {
		s.log.Warn("failed to dispatch action", zap.String("action", name), zap.Error(err))
	}
}

// PlayCard submits a single-card play.
func (s *ActionSender) PlayCard(cardID int64) {
	s.send(OpPlayCard, "playCard", struct {
		CardID int64 `json:"card_id"`
	}{cardID})
}

// PlayTrio submits a three-card combination.
func (s *ActionSender) PlayTrio(cardIDs []int64) {
	s.send(OpPlayTrio, "playTrio", struct {
		CardIDs []int64 `json:"card_ids"`
	}{cardIDs})
}

// EndTurn ends the local player's turn.
func (s *ActionSender) EndTurn() {
	s.send(OpEndTurn, "endTurn", struct{}{})
}

// DiscardAndDraw submits the conditional discard-and-draw action.
func (s *ActionSender) DiscardAndDraw() {
	s.send(OpDiscardAndDraw, "discardAndDraw", struct{}{})
}

// SkipReaction declines to react during the reaction phase.
func (s *ActionSender) SkipReaction() {
	s.send(OpSkipReaction, "skipReaction", struct{}{})
}

// SelectTargets submits the chosen target seats in selection order.
func (s *ActionSender) SelectTargets(seatIDs []int64) {
	s.send(OpSelectTargets, "selectTargets", struct {
		PlayerIDs []int64 `json:"player_ids"`
	}{seatIDs})
}

// DiscardCards submits the cards chosen for a forced discard.
func (s *ActionSender) DiscardCards(cardIDs []int64) {
	s.send(OpDiscardCards, "discardCards", struct {
		CardIDs []int64 `json:"card_ids"`
	}{cardIDs})
}

// SelectCardByToken picks one of several presented choices by its opaque
// server-issued token.
func (s *ActionSender) SelectCardByToken(token string) {
	s.send(OpSelectCardToken, "selectCard", struct {
		SelectToken string `json:"selectToken"`
	}{token})
}

// SelectCardByPosition picks a face-down card by position.
func (s *ActionSender) SelectCardByPosition(pos int) {
	s.send(OpSelectCardPos, "selectCardPosition", struct {
		Position int `json:"position"`
	}{pos})
}

// SelectCardName submits a (card type, name index) pair.
func (s *ActionSender) SelectCardName(cardType string, nameIndex int) {
	s.send(OpSelectCardName, "selectCardName", struct {
		CardType  string `json:"card_type"`
		NameIndex int    `json:"name_index"`
	}{cardType, nameIndex})
}
