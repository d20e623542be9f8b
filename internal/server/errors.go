package server

import "fmt"

// BlockedToolError is returned when a destructive tool is called on a
// server started with destructive tools denied.
type BlockedToolError struct {
	Name string
}

func (e *BlockedToolError) Error() string {
	return fmt.Sprintf("tool %s is destructive and disabled on this server", e.Name)
}
