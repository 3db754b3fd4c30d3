package mediator

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/mediator"
)

// Host is the mediator side of the coordinate mediation protocol. Grant and
// deny return comm.ErrInvalid when the mediation isn't in the request state.
type Host interface {
	comm.Receiver

	MediationRequests(ctx context.Context) ([]mediator.Mediation, error)
	GrantMediation(ctx context.Context, mediationID string) (mediator.Mediation, error)
	DenyMediation(ctx context.Context, mediationID string, mediatorTerms, recipientTerms []string) (mediator.Mediation, error)
	RouteKeys(ctx context.Context) ([]mediator.RouteKey, error)
}
