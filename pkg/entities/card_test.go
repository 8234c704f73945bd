package entities

import (
	"testing"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestRankOf() {
	testCases := []struct {
		suit     Suit
		expected int
	}{
		{Clubs, 0},
		{Spades, 1},
		{Hearts, 2},
		{Diamonds, 3},
	}

	for _, tc := range testCases {
		s.Run(string(tc.suit), func() {
			rank, err := RankOf(tc.suit)
			s.NoError(err)
			s.Equal(tc.expected, rank, "Suit should sit at its fixed position")
		})
	}

	_, err := RankOf(Suit("STARS"))
	s.True(types.IsGameError(err, types.ErrInvalidSuit), "Unknown suit should fail with INVALID_SUIT")
}

func (s *CardTestSuite) TestSuitsReturnsCopy() {
	suits := Suits()
	s.Equal([]Suit{Clubs, Spades, Hearts, Diamonds}, suits)

	suits[0] = Diamonds
	s.Equal(Clubs, Suits()[0], "Mutating the returned slice should not change the ordering")
}

func (s *CardTestSuite) TestNewCardAcceptsAllRanksAndSuits() {
	for _, suit := range Suits() {
		for rank := MinRank; rank <= MaxRank; rank++ {
			card, err := NewCard(rank, suit)
			s.Require().NoError(err, "rank %d of %s should be valid", rank, suit)
			s.Equal(rank, card.Rank())
			s.Equal(suit, card.Suit())
		}
	}
}

func (s *CardTestSuite) TestNewCardRejectsInvalidInput() {
	testCases := []struct {
		name string
		rank int
		suit Suit
		code types.ErrorCode
	}{
		{name: "rank zero", rank: 0, suit: Hearts, code: types.ErrInvalidRank},
		{name: "negative rank", rank: -3, suit: Clubs, code: types.ErrInvalidRank},
		{name: "rank thirteen", rank: 13, suit: Spades, code: types.ErrInvalidRank},
		{name: "unknown suit", rank: 5, suit: Suit("STARS"), code: types.ErrInvalidSuit},
		{name: "empty suit", rank: 5, suit: Suit(""), code: types.ErrInvalidSuit},
		{name: "lowercase suit", rank: 5, suit: Suit("hearts"), code: types.ErrInvalidSuit},
		{name: "both invalid reports suit", rank: 99, suit: Suit("STARS"), code: types.ErrInvalidSuit},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := NewCard(tc.rank, tc.suit)
			s.Error(err)
			s.True(types.IsGameError(err, tc.code), "expected %s, got %v", tc.code, err)
		})
	}
}

func (s *CardTestSuite) TestMustCardPanicsOnInvalidInput() {
	s.Panics(func() { MustCard(13, Hearts) })
	s.NotPanics(func() { MustCard(12, Hearts) })
}

func (s *CardTestSuite) TestCompareBreaksTiesBySuit() {
	suits := Suits()
	for rank := MinRank; rank <= MaxRank; rank++ {
		for i := range suits {
			for j := range suits {
				a := MustCard(rank, suits[i])
				b := MustCard(rank, suits[j])
				switch {
				case i < j:
					s.Equal(-1, a.Compare(b), "%s should be lower than %s", a, b)
				case i > j:
					s.Equal(1, a.Compare(b), "%s should be higher than %s", a, b)
				default:
					s.Equal(0, a.Compare(b), "%s should equal itself", a)
				}
			}
		}
	}

	s.True(MustCard(5, Clubs).Less(MustCard(5, Diamonds)))
}

func (s *CardTestSuite) TestCompareRankDominatesSuit() {
	for _, low := range Suits() {
		for _, high := range Suits() {
			a := MustCard(5, low)
			b := MustCard(7, high)
			s.True(a.Less(b), "%s should be lower than %s", a, b)
			s.Equal(1, b.Compare(a))
		}
	}
}

func (s *CardTestSuite) TestCompareEqualCards() {
	s.Zero(MustCard(3, Spades).Compare(MustCard(3, Spades)))
	s.NotZero(MustCard(3, Spades).Compare(MustCard(3, Hearts)))
	s.NotZero(MustCard(3, Spades).Compare(MustCard(4, Spades)))
	s.NotEqual(MustCard(3, Spades), MustCard(3, Hearts))
	s.Equal(MustCard(3, Spades), MustCard(3, Spades), "Cards should be comparable values")
}

func (s *CardTestSuite) TestDisplayName() {
	testCases := []struct {
		rank     int
		expected string
	}{
		{1, "Ace"},
		{2, "2"},
		{7, "7"},
		{9, "9"},
		{10, "Jack"},
		{11, "Queen"},
		{12, "King"},
	}

	for _, tc := range testCases {
		s.Run(tc.expected, func() {
			s.Equal(tc.expected, MustCard(tc.rank, Clubs).DisplayName())
		})
	}
}

func (s *CardTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{
			name:     "ace of hearts",
			card:     MustCard(1, Hearts),
			expected: "Ace of Hearts",
		},
		{
			name:     "jack of diamonds",
			card:     MustCard(10, Diamonds),
			expected: "Jack of Diamonds",
		},
		{
			name:     "king of clubs",
			card:     MustCard(12, Clubs),
			expected: "King of Clubs",
		},
		{
			name:     "seven of spades",
			card:     MustCard(7, Spades),
			expected: "7 of Spades",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String(), "Card string representation should match expected")
		})
	}
}
