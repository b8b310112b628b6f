package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// FaceValue returns the counting value of the card: pip cards count their
// pips, ten and face cards count ten, and an Ace counts eleven here. The
// evaluator is responsible for demoting Aces to one when eleven would bust.
func (c Card) FaceValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsTenValue returns true if the card counts ten (T, J, Q, K)
func (c Card) IsTenValue() bool {
	return c.Rank >= Ten && c.Rank <= King
}

// ParseCards parses a compact card string like "AsKh" into cards. Ranks are
// A23456789TJQK (case insensitive) and suits are s, h, d, c.
func ParseCards(s string) ([]Card, error) {
	runes := []rune(s)
	if len(runes)%2 != 0 {
		return nil, fmt.Errorf("card string %q has odd length", s)
	}

	cards := make([]Card, 0, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		rank, err := parseRank(runes[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(runes[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, Card{Suit: suit, Rank: rank})
	}
	return cards, nil
}

// MustParseCards is ParseCards that panics on malformed input, for tests and
// fixed scenario setup.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(r rune) (Rank, error) {
	switch r {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(int(r - '0')), nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", r)
	}
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 'S', 's':
		return Spades, nil
	case 'H', 'h':
		return Hearts, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'C', 'c':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", r)
	}
}
