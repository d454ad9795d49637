package poker

import "math/rand/v2"

// Deck is a 52-card deck dealt from the top. A fixed seed on the injected
// source gives a reproducible order.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck returns a shuffled deck. A nil rng draws a random PCG seed.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Deck{cards: AllCards(), rng: rng}
	d.Shuffle()
	return d
}

// Shuffle puts every card back and reorders the deck.
func (d *Deck) Shuffle() {
	d.next = 0
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal deals n cards from the deck, or nil when too few remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne takes the top card; ok is false once the deck is empty.
func (d *Deck) DealOne() (Card, bool) {
	if d.next >= len(d.cards) {
		return 0, false
	}
	card := d.cards[d.next]
	d.next++
	return card, true
}

// DealHoleCards deals one card to each player, then a second round.
func (d *Deck) DealHoleCards(players int) ([]HoleCards, bool) {
	if d.CardsRemaining() < players*2 {
		return nil, false
	}
	first := d.Deal(players)
	second := d.Deal(players)
	hands := make([]HoleCards, players)
	for i := range hands {
		hands[i] = NewHoleCards(first[i], second[i])
	}
	return hands, true
}

// DealFlop burns one card and deals three.
func (d *Deck) DealFlop() ([3]Card, bool) {
	cards := d.burnAndDeal(3)
	if cards == nil {
		return [3]Card{}, false
	}
	return [3]Card(cards), true
}

// DealTurn burns one card and deals one.
func (d *Deck) DealTurn() (Card, bool) {
	cards := d.burnAndDeal(1)
	if cards == nil {
		return 0, false
	}
	return cards[0], true
}

// DealRiver burns one card and deals one.
func (d *Deck) DealRiver() (Card, bool) {
	return d.DealTurn()
}

func (d *Deck) burnAndDeal(n int) []Card {
	if d.CardsRemaining() < n+1 {
		return nil
	}
	d.next++
	return d.Deal(n)
}

// Reset restores index order and reshuffles.
func (d *Deck) Reset() {
	d.cards = AllCards()
	d.Shuffle()
}

// CardsRemaining reports how many cards are still undealt.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// RemainingCards returns every card not in dead, in index order.
func RemainingCards(dead ...Card) []Card {
	used := NewCardSet(dead...)
	cards := make([]Card, 0, 52-used.Len())
	for _, c := range AllCards() {
		if !used.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}
