package app

import (
	"github.com/agentstation/apiflags/internal/appcontext"
)

// Interface is an alias to the shared appcontext.Interface.
// Commands accept the interface rather than the concrete App type so
// they can be tested with mock implementations.
type Interface = appcontext.Interface

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
