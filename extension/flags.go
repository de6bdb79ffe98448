// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos when flag names
// are used in both Flags().Type() definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagAll     = "all"      // Include every project
	FlagDryRun  = "dry-run"  // Preview without making changes
	FlagForce   = "force"    // Skip confirmation prompts
	FlagInPlace = "in-place" // Edit in place (required for sed)
	FlagLocal   = "local"    // Use local scope
	FlagNumber  = "number"   // Number output lines
	FlagRaw     = "raw"      // Raw output without prefix or rendering

	// Value flags

	FlagLimit     = "limit"      // Maximum results
	FlagOlderThan = "older-than" // Duration filter (e.g. 7d, 4w)
)
