package schemas

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/std/schemas"
)

type Host interface {
	comm.Receiver

	// SendSchema writes a new schema to the ledger and returns its ID.
	SendSchema(ctx context.Context, name, version string, attrs []string) (string, error)
	Schema(ctx context.Context, schemaID string) (schemas.Schema, error)
	ListSchemas(ctx context.Context) ([]schemas.Schema, error)
}
