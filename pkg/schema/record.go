// Package schema defines the wire-level data structures shared by the
// Registro server, SDK, and CLI.
package schema

import "time"

// Record is a stored entity. The ID is assigned by the registry and is
// never client-supplied; records are immutable once created.
type Record struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord is the payload accepted by the create operation.
type NewRecord struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Envelope is the uniform wrapper carried by every API response.
// Success implies Error is empty; failure implies Data is absent.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
