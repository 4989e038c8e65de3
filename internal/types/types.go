package types

// Result describes one encoding: the input as given, the rail count, the
// ciphertext, its length in runes and an xxhash64 fingerprint of the
// ciphertext in 16 hex digits.
type Result struct {
	Input       string `json:"input"`
	Rails       int    `json:"rails"`
	Ciphertext  string `json:"ciphertext"`
	Runes       int    `json:"runes"`
	Fingerprint string `json:"fingerprint"`
}

// FileResult is one file of a batch run. Output is the path written when
// outputs are enabled; Cached is set when the file was unchanged since the
// previous run and was not re-encoded.
type FileResult struct {
	Path        string `json:"path"`
	Rails       int    `json:"rails"`
	Runes       int    `json:"runes"`
	Fingerprint string `json:"fingerprint"`
	Ciphertext  string `json:"ciphertext,omitempty"`
	Output      string `json:"output,omitempty"`
	Cached      bool   `json:"cached,omitempty"`
}
