// Package config loads railfence configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags and files
// into encoder and batch settings.
package config
