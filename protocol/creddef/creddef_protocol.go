// Package creddef is the admin-credential-definitions protocol family.
package creddef

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/creddef"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var credDefProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerCredDefSend:    comm.Handle(handleSend),
		pltype.HandlerCredDefGet:     comm.Handle(handleGet),
		pltype.HandlerCredDefGetList: comm.Handle(handleGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminCredDefs, credDefProcessor)
}

func handleSend(ctx context.Context, host Host, msg *creddef.Send) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send cred def")

	id := try.To1(host.SendCredDef(ctx, msg.SchemaID, msg.Tag, msg.SupportRevocation))
	glog.V(1).Infoln("cred def sent:", id)
	return &creddef.IDMsg{
		Header:    didcomm.Header{Type: pltype.AdminCredDefID},
		CredDefID: id,
	}, nil
}

func handleGet(ctx context.Context, host Host, msg *creddef.Get) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "get cred def")

	return &creddef.CredDefMsg{
		Header:  didcomm.Header{Type: pltype.AdminCredDef},
		CredDef: try.To1(host.CredDef(ctx, msg.CredDefID)),
	}, nil
}

func handleGetList(ctx context.Context, host Host, msg *creddef.GetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list cred defs")

	results, page := decorator.PageItems(msg.Paginate, try.To1(host.ListCredDefs(ctx)))
	return &creddef.List{
		Header:   didcomm.Header{Type: pltype.AdminCredDefList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}
