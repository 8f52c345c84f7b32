package registry

import (
	"fmt"

	"github.com/registrolabs/registro/pkg/schema"
)

// Seed pushes every entry into the destination through the write
// interface, in order, so seeded records receive sequential identifiers
// like any other create. It stops at the first failure and reports how
// many records were created before it.
func Seed(dst RecordWriter, entries []schema.NewRecord) (int, error) {
	for i, e := range entries {
		if _, err := dst.Create(e.Name, e.Email); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return len(entries), nil
}
