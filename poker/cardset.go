package poker

import "math/bits"

// CardSet represents a set of cards using a bitset keyed by card index.
type CardSet uint64

// NewCardSet creates a CardSet from cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.Index()) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// addUnique adds every card and reports the first card already present.
func (cs *CardSet) addUnique(cards ...Card) (Card, bool) {
	for _, card := range cards {
		if cs.Contains(card) {
			return card, false
		}
		cs.Add(card)
	}
	return 0, true
}
