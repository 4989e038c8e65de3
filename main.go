package main

import "github.com/railfence/railfence/cmd/railfence"

func main() { railfence.Execute() }
