package core

import (
	"context"
	"unicode/utf8"

	"github.com/railfence/railfence/internal/cache"
	"github.com/railfence/railfence/internal/engine"
	"github.com/railfence/railfence/internal/railfence"
	"github.com/railfence/railfence/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type (
	Grid       = railfence.Grid
	Cell       = railfence.Cell
	Result     = types.Result
	FileResult = types.FileResult
	Config     = engine.Config
)

// ErrInvalidArgument is returned for rail counts below one.
var ErrInvalidArgument = railfence.ErrInvalidArgument

// ValidateRails reports ErrInvalidArgument for rail counts below one.
func ValidateRails(rails int) error { return railfence.ValidateRails(rails) }

// Encode returns the upper-cased rail-fence ciphertext of text.
func Encode(text string, rails int) (string, error) { return railfence.Encode(text, rails) }

// Layout places the upper-cased text on the rails without reading it off.
func Layout(text string, rails int) (*Grid, error) { return railfence.Layout(text, rails) }

// Pattern returns the rail visited by each of n consecutive positions.
func Pattern(n, rails int) ([]int, error) { return railfence.Pattern(n, rails) }

// Describe encodes text and reports it along with its rune count and the
// fingerprint of the ciphertext.
func Describe(text string, rails int) (Result, error) {
	ct, err := railfence.Encode(text, rails)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input:       text,
		Rails:       rails,
		Ciphertext:  ct,
		Runes:       utf8.RuneCountInString(ct),
		Fingerprint: cache.FastHash([]byte(ct)),
	}, nil
}

// EncodeTree encodes every eligible text file under cfg.Root.
func EncodeTree(ctx context.Context, cfg Config) ([]FileResult, error) {
	res, err := engine.Run(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}
