// flags.go defines constants for CLI flag names shared across extensions.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.

package extension

// Flag name constants for CLI commands.
const (
	FlagExplain = "explain" // Show how a tag header differs from the signature
	FlagLocal   = "local"   // Use local config scope
)
