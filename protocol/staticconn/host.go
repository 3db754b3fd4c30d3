package staticconn

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/staticconn"
)

type Host interface {
	comm.Receiver

	// CreateStaticConnection stores the other side and returns the info the
	// other agent needs for its side of the connection.
	CreateStaticConnection(ctx context.Context, their staticconn.Their) (staticconn.Ours, error)
	StaticConnections(ctx context.Context) ([]staticconn.StaticConnection, error)
}
