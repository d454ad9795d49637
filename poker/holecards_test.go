package poker

import (
	"errors"
	"testing"
)

func TestHoleCardsPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand      string
		suited    bool
		pair      bool
		gap       int
		connected bool
	}{
		{"AsKs", true, false, 0, true},
		{"AsAh", false, true, 0, true},
		{"7c7d", false, true, 0, true},
		{"As2d", false, false, 0, true},
		{"Kh2h", true, false, 1, false},
		{"9c7c", true, false, 1, false},
		{"Td5s", false, false, 4, false},
		{"8h7d", false, false, 0, true},
		{"Ac7d", false, false, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			t.Parallel()
			h := MustParseHoleCards(tt.hand)
			if h.IsSuited() != tt.suited {
				t.Errorf("IsSuited = %v, want %v", h.IsSuited(), tt.suited)
			}
			if h.IsPair() != tt.pair {
				t.Errorf("IsPair = %v, want %v", h.IsPair(), tt.pair)
			}
			if h.Gap() != tt.gap {
				t.Errorf("Gap = %d, want %d", h.Gap(), tt.gap)
			}
			if h.IsConnected() != tt.connected {
				t.Errorf("IsConnected = %v, want %v", h.IsConnected(), tt.connected)
			}
			if h.String() != tt.hand {
				t.Errorf("String = %s, want %s", h.String(), tt.hand)
			}
		})
	}
}

func TestParseHoleCardsErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		wantErr error
	}{
		{"As", ErrInvalidHoleCards},
		{"AsKsQs", ErrInvalidHoleCards},
		{"AsAs", ErrDuplicateCard},
		{"AsXs", ErrInvalidRank},
	}
	for _, tt := range tests {
		if _, err := ParseHoleCards(tt.input); !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseHoleCards(%q) error = %v, want %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestCombineWithBoard(t *testing.T) {
	t.Parallel()
	h := MustParseHoleCards("AsAh")
	board := [5]Card(MustParseCards("KdQcJs2h7c"))
	seven := h.CombineWithBoard(board)
	if got := FormatCards(seven[:]); got != "As Ah Kd Qc Js 2h 7c" {
		t.Errorf("CombineWithBoard = %s", got)
	}
}

func TestHoleCardsCategory(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hand     string
		expected HoleCardCategory
	}{
		{"Pocket Aces", "AsAh", CategoryPremium},
		{"Pocket Jacks", "JhJd", CategoryPremium},
		{"Ace King offsuit", "AcKh", CategoryPremium},
		{"Pocket Tens", "TcTh", CategoryStrong},
		{"Ace Queen suited", "AsQs", CategoryStrong},
		{"Ace Jack offsuit", "AdJc", CategoryStrong},
		{"Pocket Sevens", "7h7c", CategoryMedium},
		{"King Queen suited", "KsQs", CategoryMedium},
		{"Queen Ten suited", "QdTd", CategoryMedium},
		{"Pocket Twos", "2c2h", CategoryWeak},
		{"Suited connectors 76s", "7h6h", CategoryWeak},
		{"Suited one gapper 53s", "5d3d", CategoryWeak},
		{"Seven Two offsuit", "7c2h", CategoryTrash},
		{"King Queen offsuit", "KdQc", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MustParseHoleCards(tt.hand).Category(); got != tt.expected {
				t.Errorf("Category(%s) = %s, want %s", tt.hand, got, tt.expected)
			}
		})
	}
}
