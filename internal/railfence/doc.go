// Package railfence implements the rail-fence transposition cipher encoder.
// Text is upper-cased, laid out along a zig-zag over a fixed number of rails,
// and read back rail by rail. The permutation depends only on the rail count
// and the text length, never on the characters themselves.
//
// This package is internal; external consumers should use pkg/core.
package railfence
