package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Step completed
	SymbolFail     = "✗" // Failure
	SymbolPending  = "○" // Locked step
	SymbolProgress = "◐" // Active step
	SymbolComplete = "●" // Healthy stock
	SymbolWarning  = "▲" // Low or expiring stock
)
