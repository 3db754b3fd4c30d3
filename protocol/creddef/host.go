package creddef

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/creddef"
)

type Host interface {
	comm.Receiver

	// SendCredDef writes a new credential definition to the ledger and
	// returns its ID.
	SendCredDef(ctx context.Context, schemaID, tag string, supportRevocation bool) (string, error)
	CredDef(ctx context.Context, credDefID string) (creddef.CredDef, error)
	ListCredDefs(ctx context.Context) ([]creddef.CredDef, error)
}
