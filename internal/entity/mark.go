package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/nacbot/internal/apperror"
)

// Mark - the state of a single cell, or the symbol a player places.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// ParseMark - parses a player mark, an empty cell is not a player.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	if that > PlayerO {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, that)
	}

	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = Empty
		return nil
	}

	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// Verdict - terminal status of a board.
type Verdict uint8

const (
	NoWinner Verdict = iota
	WinnerX
	WinnerO
	Tie
)

// WinnerOf - the verdict for a line fully owned by mark.
func WinnerOf(mark Mark) Verdict {
	switch mark {
	case PlayerX:
		return WinnerX
	case PlayerO:
		return WinnerO
	default:
		return NoWinner
	}
}

// Winner - the winning mark, Empty for a tie or an unfinished game.
func (that Verdict) Winner() Mark {
	switch that {
	case WinnerX:
		return PlayerX
	case WinnerO:
		return PlayerO
	default:
		return Empty
	}
}

func (that Verdict) IsFinal() bool {
	return that != NoWinner
}

func (that Verdict) String() string {
	switch that {
	case WinnerX:
		return "X"
	case WinnerO:
		return "O"
	case Tie:
		return "tie"
	default:
		return "none"
	}
}

func (that Verdict) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Verdict) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*that = NoWinner
	case "X":
		*that = WinnerX
	case "O":
		*that = WinnerO
	case "tie":
		*that = Tie
	default:
		return fmt.Errorf("unknown verdict %q", text)
	}

	return nil
}
