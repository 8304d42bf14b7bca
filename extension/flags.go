// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "reject-nan" -> FlagRejectNaN).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDiff   = "diff"   // Show what a bounded append dropped
	FlagInt    = "int"    // Compare as integers
	FlagLocal  = "local"  // Use local config scope
	FlagStrict = "strict" // NaN fails double range checks

	// String flags

	FlagFile = "file" // YAML file of arguments

	// Integer flags

	FlagBuffer = "buffer" // Error buffer size in bytes
	FlagSize   = "size"   // Destination buffer capacity in bytes
)
