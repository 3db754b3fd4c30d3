package dids

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/dids"
)

// Host is the agent capability the admin-dids family needs.
type Host interface {
	comm.Receiver

	ListDIDs(ctx context.Context) ([]dids.DID, error)
	CreateDID(ctx context.Context, seed string, metadata map[string]any) (dids.DID, error)
	SetDIDMetadata(ctx context.Context, did string, metadata map[string]any) (dids.DID, error)

	// PublicDID returns nil if the agent has no public DID.
	PublicDID(ctx context.Context) (*dids.DID, error)
	SetPublicDID(ctx context.Context, did string) (dids.DID, error)
}
