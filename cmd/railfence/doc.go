// Package railfence provides the command-line interface for the railfence
// encoder. It configures subcommands (encode, grid, batch, play, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/railfence/railfence/cmd/railfence"
//	func main() { railfence.Execute() }
package railfence
