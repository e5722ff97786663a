package domain

// SeatView is what the local player knows about one seat. Other seats'
// hands are tracked only as a count, never as cards.
type SeatView struct {
	HandCount      int
	GoldenPotatoes int
	// Score mirrors GoldenPotatoes for scoreboard compatibility.
	Score int
}

// View is the local player's picture of the match: the single source of
// truth shared by the reconciliation engine (writer) and the phase
// handlers (readers). It lives for one game session and is mutated only
// by one notification or interaction at a time.
type View struct {
	LocalSeat int64

	Hand       []Card
	DeckCount  int
	DiscardTop *Card
	Seats      map[int64]*SeatView

	Phase string
}

// NewView constructs an empty view for the given local seat.
func NewView(localSeat int64) *View {
	return &View{
		LocalSeat: localSeat,
		Seats:     make(map[int64]*SeatView),
	}
}

// Seat returns the view for a seat, creating it on first reference.
func (v *View) Seat(id int64) *SeatView {
	s, ok := v.Seats[id]
	if !ok {
		s = &SeatView{}
		v.Seats[id] = s
	}
	return s
}

// ReplaceHand swaps in a full new hand for the local seat and resyncs the
// local hand count.
func (v *View) ReplaceHand(cards []Card) {
	v.Hand = append(v.Hand[:0:0], cards...)
	v.Seat(v.LocalSeat).HandCount = len(v.Hand)
}

// AddCard appends a card to the local hand.
func (v *View) AddCard(c Card) {
	v.Hand = append(v.Hand, c)
}

// RemoveCard drops a card from the local hand by id. Absence is tolerated:
// the removal may race with an optimistic local removal.
func (v *View) RemoveCard(id int64) bool {
	for i, c := range v.Hand {
		if c.ID == id {
			v.Hand = append(v.Hand[:i], v.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HandCard looks up a card in the local hand by id.
func (v *View) HandCard(id int64) (Card, bool) {
	for _, c := range v.Hand {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// SyncLocalHandCount realigns the local seat's count with the actual hand
// after a hand mutation settles.
func (v *View) SyncLocalHandCount() {
	v.Seat(v.LocalSeat).HandCount = len(v.Hand)
}

// SetDeckCount sets the draw deck size. Clamped at zero.
func (v *View) SetDeckCount(n int) {
	v.DeckCount = clamp(n)
}

// AddDeckCount applies a delta to the draw deck size. Clamped at zero.
func (v *View) AddDeckCount(delta int) {
	v.DeckCount = clamp(v.DeckCount + delta)
}

// AddHandCount applies a delta to a seat's hand count. Clamped at zero.
func (v *View) AddHandCount(seat int64, delta int) {
	s := v.Seat(seat)
	s.HandCount = clamp(s.HandCount + delta)
}

// SetHandCount sets a seat's hand count. Clamped at zero.
func (v *View) SetHandCount(seat int64, n int) {
	v.Seat(seat).HandCount = clamp(n)
}

// AddGoldenPotatoes applies a score delta to a seat, clamped at zero, and
// mirrors the result into the generic score field.
func (v *View) AddGoldenPotatoes(seat int64, delta int) {
	s := v.Seat(seat)
	s.GoldenPotatoes = clamp(s.GoldenPotatoes + delta)
	s.Score = s.GoldenPotatoes
}

// SetGoldenPotatoes sets a seat's score outright, clamped at zero.
func (v *View) SetGoldenPotatoes(seat int64, n int) {
	s := v.Seat(seat)
	s.GoldenPotatoes = clamp(n)
	s.Score = s.GoldenPotatoes
}

// ResetForGame clears per-game state while keeping the seat identity.
func (v *View) ResetForGame() {
	v.Hand = nil
	v.DeckCount = 0
	v.DiscardTop = nil
	v.Seats = make(map[int64]*SeatView)
	v.Phase = ""
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
