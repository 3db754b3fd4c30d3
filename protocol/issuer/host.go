package issuer

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/issuer"
)

// Host runs the issue-credential and present-proof protocols in the issuer
// and the verifier roles.
type Host interface {
	comm.Receiver

	SendCredential(ctx context.Context, connID, credDefID, comment string, attrs []issuer.CredAttr) (issuer.CredExchange, error)
	RequestPresentation(ctx context.Context, connID, comment string, req issuer.ProofRequest) (issuer.PresExchange, error)

	IssuedCredentials(ctx context.Context) ([]issuer.CredExchange, error)
	RequestedPresentations(ctx context.Context) ([]issuer.PresExchange, error)
}
