package model

// Shared defaults used by the CLI and the aggregator.
const (
	DefaultTopClients   = 5
	DefaultTopEndpoints = 10
)
