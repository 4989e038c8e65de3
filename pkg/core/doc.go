// Package core provides a small, stable facade over railfence's internal
// cipher and batch packages for external integrations.
//
// Example:
//
//	res, err := core.Describe("Hello,World!", 3)
//	if err != nil { /* handle */ }
//	_ = core.MarshalResults(os.Stdout, []core.Result{res})
package core
