package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/nacbot/internal/entity"
)

var ErrInvalidInput = errors.New("invalid place, expected a column A-C and a row 1-3 (e.g. \"A1\")")

// ParseCoordinate - parses console notation: a column letter then a row number, "B3".
func ParseCoordinate(s string) (entity.Coordinate, error) {
	s = strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if len(s) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}

	c := entity.Coordinate{
		Row: int(s[1]) - '1',
		Col: int(s[0]) - 'A',
	}

	if !c.Valid() {
		return entity.Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}

	return c, nil
}
