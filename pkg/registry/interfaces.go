package registry

import "github.com/registrolabs/registro/pkg/schema"

// --- Functional Interfaces (Interface Segregation) ---

// RecordReader defines the read operations of the registry.
type RecordReader interface {
	// Get returns the record with the given id.
	Get(id int) (schema.Record, error)
	// List returns all records in insertion order.
	List() ([]schema.Record, error)
}

// RecordWriter defines the create operation of the registry.
type RecordWriter interface {
	// Create validates the input, assigns the next identifier, and stores
	// the new record.
	Create(name, email string) (schema.Record, error)
}

// --- Composite Interface ---

// Service is the full registry contract. Both the embedded Registry and
// the remote SDK client implement it, so callers do not care whether the
// store lives in-process or behind the network.
type Service interface {
	RecordReader
	RecordWriter
}
