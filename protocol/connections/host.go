package connections

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/connections"
)

// Host is the agent capability the admin-connections family needs. The
// connection protocol itself is run by the host.
type Host interface {
	comm.Receiver

	ListConnections(ctx context.Context) ([]connections.Connection, error)
	Connection(ctx context.Context, connID string) (connections.Connection, error)

	// UpdateConnection sets the label and the role, empty values are not
	// changed.
	UpdateConnection(ctx context.Context, connID, label, role string) (connections.Connection, error)
	DeleteConnection(ctx context.Context, connID string) error

	ReceiveInvitation(ctx context.Context, invitation string, autoAccept bool) (connections.Connection, error)
	AcceptInvitation(ctx context.Context, connID string) (connections.Connection, error)
	AcceptRequest(ctx context.Context, connID string) (connections.Connection, error)
}
