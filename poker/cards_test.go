package poker

import (
	"errors"
	"testing"

	"github.com/lox/pokereval/internal/randutil"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	// Two of clubs is the lowest card
	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestCardBitLayout(t *testing.T) {
	t.Parallel()
	// King of diamonds: prime 37, rank 11, diamond bit, king rank bit
	kd := NewCard(King, Diamonds)
	want := uint32(37 | 11<<8 | 1<<13 | 1<<27)
	if kd.Raw() != want {
		t.Fatalf("Kd raw = %#08x, want %#08x", kd.Raw(), want)
	}
	if kd.Prime() != 37 {
		t.Errorf("Prime = %d, want 37", kd.Prime())
	}
	if kd.RankBits() != 1<<11 {
		t.Errorf("RankBits = %#x, want %#x", kd.RankBits(), 1<<11)
	}
	if kd.SuitBits() != 0b0010 {
		t.Errorf("SuitBits = %#b, want 0b10", kd.SuitBits())
	}
}

func TestCardFromRawPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		rank, suit uint8
	}{
		{"rank too high", 13, 0},
		{"suit too high", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Errorf("CardFromRaw(%d, %d) did not panic", tt.rank, tt.suit)
				}
			}()
			CardFromRaw(tt.rank, tt.suit)
		})
	}

	if got := CardFromRaw(12, 3); got != NewCard(Ace, Spades) {
		t.Errorf("CardFromRaw(12, 3) = %s, want As", got)
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  error
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten with T notation", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "lowercase rank", input: "qs", wantCard: NewCard(Queen, Spades)},
		{name: "uppercase suit", input: "9S", wantCard: NewCard(Nine, Spades)},
		{name: "invalid rank", input: "Xs", wantErr: ErrInvalidRank},
		{name: "invalid suit", input: "Ax", wantErr: ErrInvalidSuit},
		{name: "too short", input: "A", wantErr: ErrInvalidLength},
		{name: "too long", input: "Asx", wantErr: ErrInvalidLength},
		{name: "ten as digits", input: "10s", wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCard(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %s, want %s", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"AsKdQh", "As Kd Qh", " As  KdQh "} {
		cards, err := ParseCards(input)
		if err != nil {
			t.Fatalf("ParseCards(%q): %v", input, err)
		}
		if got := FormatCards(cards); got != "As Kd Qh" {
			t.Errorf("ParseCards(%q) = %s, want As Kd Qh", input, got)
		}
	}

	if _, err := ParseCards("AsK"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("odd length error = %v, want ErrInvalidLength", err)
	}
	if _, err := ParseCards("AsKz"); !errors.Is(err, ErrInvalidSuit) {
		t.Errorf("bad suit error = %v, want ErrInvalidSuit", err)
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[Card]bool)
	for i, card := range AllCards() {
		if seen[card] {
			t.Fatalf("duplicate card %s", card)
		}
		seen[card] = true

		if card.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", card, card.Index(), i)
		}
		back, err := CardFromIndex(card.Index())
		if err != nil || back != card {
			t.Errorf("CardFromIndex(%d) = %s, %v; want %s", i, back, err, card)
		}
		parsed, err := ParseCard(card.String())
		if err != nil || parsed != card {
			t.Errorf("ParseCard(%q) = %s, %v; want %s", card.String(), parsed, err, card)
		}
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestCardFromIndexOutOfRange(t *testing.T) {
	t.Parallel()
	for _, i := range []int{-1, 52, 100} {
		if _, err := CardFromIndex(i); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("CardFromIndex(%d) error = %v, want ErrInvalidIndex", i, err)
		}
	}
}

func TestSameRankSameSuit(t *testing.T) {
	t.Parallel()
	as, ah, ks := NewCard(Ace, Spades), NewCard(Ace, Hearts), NewCard(King, Spades)
	if !as.SameRank(ah) || as.SameRank(ks) {
		t.Error("SameRank mismatch")
	}
	if !as.SameSuit(ks) || as.SameSuit(ah) {
		t.Error("SameSuit mismatch")
	}
}

func TestCardSet(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("AsKd2c")
	set := NewCardSet(cards...)
	if set.Len() != 3 {
		t.Fatalf("Len = %d, want 3", set.Len())
	}
	for _, c := range cards {
		if !set.Contains(c) {
			t.Errorf("set missing %s", c)
		}
	}
	if set.Contains(NewCard(Ace, Hearts)) {
		t.Error("set contains Ah")
	}
}

func TestDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(42))

	if deck.CardsRemaining() != 52 {
		t.Fatalf("new deck has %d cards, want 52", deck.CardsRemaining())
	}

	hands, ok := deck.DealHoleCards(3)
	if !ok || len(hands) != 3 {
		t.Fatalf("DealHoleCards(3) = %v, %v", hands, ok)
	}
	if _, ok := deck.DealFlop(); !ok {
		t.Fatal("DealFlop failed")
	}
	if _, ok := deck.DealTurn(); !ok {
		t.Fatal("DealTurn failed")
	}
	if _, ok := deck.DealRiver(); !ok {
		t.Fatal("DealRiver failed")
	}
	// 6 hole cards, 3 burns, 5 board cards
	if deck.CardsRemaining() != 52-14 {
		t.Errorf("CardsRemaining = %d, want %d", deck.CardsRemaining(), 52-14)
	}

	if cards := deck.Deal(100); cards != nil {
		t.Error("Deal(100) should fail")
	}

	deck.Reset()
	seen := NewCardSet(deck.Deal(52)...)
	if seen.Len() != 52 {
		t.Errorf("reset deck dealt %d unique cards, want 52", seen.Len())
	}
	if _, ok := deck.DealOne(); ok {
		t.Error("DealOne on empty deck should fail")
	}
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(7)).Deal(10)
	b := NewDeck(randutil.New(7)).Deal(10)
	if FormatCards(a) != FormatCards(b) {
		t.Errorf("same seed dealt %s and %s", FormatCards(a), FormatCards(b))
	}
}

func TestDeckWithoutSource(t *testing.T) {
	t.Parallel()
	deck := NewDeck(nil)
	if n := NewCardSet(deck.Deal(52)...).Len(); n != 52 {
		t.Errorf("dealt %d unique cards, want 52", n)
	}
}

func TestRemainingCards(t *testing.T) {
	t.Parallel()
	dead := MustParseCards("AsAhKdQcJs")
	remaining := RemainingCards(dead...)
	if len(remaining) != 47 {
		t.Fatalf("len = %d, want 47", len(remaining))
	}
	deadSet := NewCardSet(dead...)
	for i, c := range remaining {
		if deadSet.Contains(c) {
			t.Errorf("remaining contains dead card %s", c)
		}
		if i > 0 && remaining[i-1].Index() >= c.Index() {
			t.Errorf("remaining not in index order at %d", i)
		}
	}
}

func BenchmarkCardCreation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewCard(Rank(i%13), Suit(i%4))
	}
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
