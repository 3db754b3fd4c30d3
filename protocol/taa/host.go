package taa

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/taa"
)

type Host interface {
	comm.Receiver

	TAA(ctx context.Context) (taa.TAA, error)
	AcceptTAA(ctx context.Context, a taa.Acceptance) error

	// TAAAcceptance returns nil when the agent hasn't accepted the TAA.
	TAAAcceptance(ctx context.Context) (*taa.Acceptance, error)
}
