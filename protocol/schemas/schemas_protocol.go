// Package schemas is the admin-schemas protocol family.
package schemas

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/schemas"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var schemaProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerSchemaSend:    comm.Handle(handleSend),
		pltype.HandlerSchemaGet:     comm.Handle(handleGet),
		pltype.HandlerSchemaGetList: comm.Handle(handleGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminSchemas, schemaProcessor)
}

func handleSend(ctx context.Context, host Host, msg *schemas.Send) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send schema")

	id := try.To1(host.SendSchema(ctx, msg.SchemaName, msg.SchemaVersion, msg.AttributeNames))
	glog.V(1).Infof("schema %s:%s sent: %s", msg.SchemaName, msg.SchemaVersion, id)
	return &schemas.IDMsg{
		Header:   didcomm.Header{Type: pltype.AdminSchemaID},
		SchemaID: id,
	}, nil
}

func handleGet(ctx context.Context, host Host, msg *schemas.Get) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "get schema")

	return &schemas.SchemaMsg{
		Header: didcomm.Header{Type: pltype.AdminSchema},
		Schema: try.To1(host.Schema(ctx, msg.SchemaID)),
	}, nil
}

func handleGetList(ctx context.Context, host Host, msg *schemas.GetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list schemas")

	results, page := decorator.PageItems(msg.Paginate, try.To1(host.ListSchemas(ctx)))
	return &schemas.List{
		Header:   didcomm.Header{Type: pltype.AdminSchemaList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}
