package railfence

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidArgument is returned for rail counts below one.
var ErrInvalidArgument = errors.New("invalid argument")

// direction is the state of the zig-zag walk.
type direction int

const (
	down direction = iota // rail index increments
	up                    // rail index decrements
)

// ValidateRails reports ErrInvalidArgument for rail counts below one.
func ValidateRails(rails int) error {
	if rails <= 0 {
		return fmt.Errorf("%w: rail count must be positive, got %d", ErrInvalidArgument, rails)
	}
	return nil
}

// Normalize upper-cases text one rune at a time. The simple per-rune mapping
// never changes the number of runes.
func Normalize(text string) string {
	return strings.Map(unicode.ToUpper, text)
}

// Period returns the number of positions after which the rail sequence repeats.
func Period(rails int) int {
	if rails <= 1 {
		return 1
	}
	return 2 * (rails - 1)
}

// Pattern returns the rail visited by each of n consecutive positions.
func Pattern(n, rails int) ([]int, error) {
	if err := ValidateRails(rails); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []int{}, nil
	}
	out := make([]int, n)
	if rails == 1 {
		return out, nil
	}
	j, dir := 0, down
	for i := range out {
		out[i] = j
		if dir == down {
			j++
		} else {
			j--
		}
		// bounce is decided on the index after the step
		if j == rails-1 {
			dir = up
		} else if j == 0 {
			dir = down
		}
	}
	return out, nil
}

// Encode upper-cases text and returns its rail-fence ciphertext over the
// given number of rails. Rail counts below one fail with ErrInvalidArgument.
func Encode(text string, rails int) (string, error) {
	g, err := Layout(text, rails)
	if err != nil {
		return "", err
	}
	return g.Ciphertext(), nil
}
