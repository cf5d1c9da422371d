// Package cli implements the medstock command-line interface.
//
// Each Cobra command resolves settings (config, color mode, theme and
// inventory seed) through loadSettings and hands off to the package that
// does the work:
//
//	medstock dashboard   - inventory dashboard (internal/dashboard)
//	medstock stats       - headline statistics (internal/landing)
//	medstock register    - registration wizard (internal/register)
//	medstock version     - build information
//	medstock completion  - shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command. --verbose turns on debug logging for the command-line output;
// the full-screen views never log to the terminal they draw on.
package cli
