package invitations

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/invitations"
)

type Host interface {
	comm.Receiver

	CreateInvitation(ctx context.Context, opts invitations.Options) (invitations.Invitation, error)
	ListInvitations(ctx context.Context) ([]invitations.Invitation, error)
}
