// Package transport serves server instances over stdio and HTTP.
//
// Three modes exist and exactly one is chosen at process start:
//
//   - stdio: one implicit session bound to the process's standard streams.
//   - streamable-http: a long-lived HTTP server that keeps one server
//     instance per client session, keyed by the Mcp-Session-Id header.
//   - stateless-http: a fresh server instance per POST, with connection
//     settings optionally supplied as query parameters.
//
// # Session lifecycle (streamable-http)
//
// A POST without a session header whose body is an initialize request
// creates a session. The token is minted here, handed to the per-session
// mcp-go transport and returned to the client in Mcp-Session-Id. Every later
// request must carry that token; an unknown or missing token is rejected
// with HTTP 400 and a JSON-RPC error envelope and never creates a session.
// DELETE terminates a session. On shutdown every live session is closed
// before the HTTP server stops.
//
// The session table is owned by the Stateful handler and is not reachable
// from the server or dispatch layers.
package transport
