package comm

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
)

// Receiver is the host agent seen from the toolbox. It's the minimum every
// host must implement. The protocol families declare their own capability
// interfaces which the same Receiver may implement, see the protocol
// packages.
type Receiver interface {
	// IsAdmin tells if the connection has the admin role.
	IsAdmin(ctx context.Context, connID string) (bool, error)

	// Send sends the message to the connection.
	Send(ctx context.Context, connID string, msg didcomm.Message) error
}

// AdminLister is implemented by hosts which can list their admin connections.
// It's used to push notifications to all of them.
type AdminLister interface {
	AdminConnections(ctx context.Context) ([]string, error)
}
