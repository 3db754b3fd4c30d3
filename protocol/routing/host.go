package routing

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/mediator"
	"github.com/findy-network/findy-agent-toolbox/std/routing"
)

// Host is the recipient side of the coordinate mediation protocol.
type Host interface {
	comm.Receiver

	RequestMediation(ctx context.Context, connID string, mediatorTerms, recipientTerms []string) (mediator.Mediation, error)
	UpdateKeylist(ctx context.Context, connID string, updates []routing.KeylistUpdate) error
	Mediations(ctx context.Context) ([]mediator.Mediation, error)
}
