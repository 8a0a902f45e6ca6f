// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// Deps holds back-end dependencies for the app. The console keeps no
// database of its own; everything flows through the store backend API.
type Deps struct {
	Backend *backend.Client
}
