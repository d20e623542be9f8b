// Package logging provides the subsystem-tagged logger used throughout n8n-mcp.
//
// It is a thin layer over log/slog. Every entry carries a subsystem attribute
// so that output from the backend client, the transports and the session
// table can be told apart in a single stream.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "Loaded configuration from %s", path)
//	logging.Debug("N8nClient", "GET %s", url)
//	logging.Warn("Sessions", "Rejected unknown session %s", logging.TruncateSessionID(id))
//	logging.Error("StatefulHTTP", err, "Failed to close session")
//
// # Output
//
// Output always goes to the writer passed to InitForCLI. The serve command
// passes os.Stderr in every transport mode because stdout carries the MCP
// protocol when running over stdio.
//
// Session tokens should be passed through TruncateSessionID before logging.
// The n8n API key must never be logged; request URLs are sanitised by the
// backend client before they reach this package.
package logging
