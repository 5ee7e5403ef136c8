package board

import (
	"errors"
	"fmt"
)

// ErrMalformedLevel is returned when a level layout cannot be parsed.
var ErrMalformedLevel = errors.New("malformed level")

// Parse builds a grid from a textual layout.
//
// Each line is a row: '.' is an empty cell and an uppercase letter is an
// endpoint of the flow with that letter. The first row fixes the width.
// Carriage returns are ignored and a trailing newline does not start a row.
// Pairing of endpoints is not checked here; see Validate.
func Parse(text []byte) (*Grid, error) {
	var cells []Cell
	width, height, col := 0, 1, 0

	for i, ch := range text {
		if f, ok := FlowFromLetter(rune(ch)); ok {
			cells = append(cells, Entry(f))
			col++
			continue
		}

		switch {
		case ch == '.':
			cells = append(cells, Empty())
		case ch == '\r':
			continue
		case ch == '\n':
			if height == 1 {
				width = col
			} else if col != width {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLevel, height, col, width)
			}
			height++
			col = 0
			continue
		default:
			return nil, fmt.Errorf("%w: unexpected %q at byte %d", ErrMalformedLevel, ch, i)
		}
		col++
	}

	switch {
	case height == 1:
		width = col
	case col == 0 && text[len(text)-1] == '\n':
		height--
	case col != width:
		return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLevel, height, col, width)
	}

	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedLevel)
	}

	return &Grid{
		W:     width,
		H:     height,
		Cells: cells,
	}, nil
}

// ParseString is Parse for string input.
func ParseString(text string) (*Grid, error) {
	return Parse([]byte(text))
}
