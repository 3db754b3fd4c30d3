package holder

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/holder"
	"github.com/findy-network/findy-agent-toolbox/std/issuer"
)

// Host runs the issue-credential and present-proof protocols in the holder
// and the prover roles.
type Host interface {
	comm.Receiver

	SendCredProposal(ctx context.Context, connID, credDefID, comment string, attrs []issuer.CredAttr) (issuer.CredExchange, error)
	AcceptCredOffer(ctx context.Context, exchangeID string) (issuer.CredExchange, error)
	HeldCredentials(ctx context.Context) ([]holder.Credential, error)

	SendPresProposal(ctx context.Context, connID, comment string, attrs []holder.PresAttr) (issuer.PresExchange, error)

	// ApprovePresRequest sends the presentation. The host selects the
	// credentials for the attributes missing from referents.
	ApprovePresRequest(ctx context.Context, exchangeID string, referents, selfAttested map[string]string) (issuer.PresExchange, error)
	SentPresentations(ctx context.Context) ([]issuer.PresExchange, error)
}
