package app

import "goldenpotato/internal/domain"

// RevealCache holds card identities exposed to the local seat by
// reveal-only notifications, keyed by card id. A later hand-mutation event
// that omits identity (to keep it hidden from other observers) resolves
// through here. Entries are removed when read; unread entries live for the
// session, bounded by deck size, so there is no eviction policy.
type RevealCache struct {
	cards map[int64]domain.Card
}

// NewRevealCache constructs an empty cache.
func NewRevealCache() *RevealCache {
	return &RevealCache{cards: make(map[int64]domain.Card)}
}

// Put remembers a revealed identity.
func (rc *RevealCache) Put(c domain.Card) {
	rc.cards[c.ID] = c
}

// Take returns and removes the identity for a card id.
func (rc *RevealCache) Take(id int64) (domain.Card, bool) {
	c, ok := rc.cards[id]
	if ok {
		delete(rc.cards, id)
	}
	return c, ok
}

// Len reports how many identities are currently cached.
func (rc *RevealCache) Len() int {
	return len(rc.cards)
}
