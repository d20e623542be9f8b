// Package dispatch maps MCP tool names to n8n backend operations.
//
// Every catalog tool has exactly one Handler in the Table. A handler pulls
// the named fields it needs out of the untyped argument map and calls a
// single Backend method with them. Argument shapes are not validated here;
// malformed input is left for the n8n API to reject so that error timing
// and messages match what the backend reports.
package dispatch
