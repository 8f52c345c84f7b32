package sdk

import (
	"os"

	"github.com/registrolabs/registro/pkg/registry"
)

// AddrEnv names the environment variable holding the base URL of a remote
// registro daemon.
const AddrEnv = "REGISTRO_ADDR"

// New initializes the registry service based on the environment. When
// AddrEnv is set the returned Service talks to the remote daemon;
// otherwise it is an embedded in-process registry. Callers get the
// interface and do not care which.
func New() registry.Service {
	if addr := os.Getenv(AddrEnv); addr != "" {
		return Connect(addr)
	}
	return registry.New()
}
