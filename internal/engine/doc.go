// Package engine contains the batch encoding logic for railfence. It walks a
// directory tree, selects text files by glob and ignore rules, encodes each
// one on a worker pool and optionally writes the ciphertext next to the
// input. This package is internal; external consumers should use pkg/core.
package engine
