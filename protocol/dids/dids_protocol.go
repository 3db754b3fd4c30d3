/*
Package dids is the admin-dids protocol family. It lists the DIDs of the
agent's wallet, creates new ones and sets the public DID.
*/
package dids

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/dids"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var didsProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerDIDGetList:     comm.Handle(handleGetList),
		pltype.HandlerDIDCreate:      comm.Handle(handleCreate),
		pltype.HandlerDIDSetMetadata: comm.Handle(handleSetMetadata),
		pltype.HandlerDIDGetPublic:   comm.Handle(handleGetPublic),
		pltype.HandlerDIDSetPublic:   comm.Handle(handleSetPublic),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminDIDs, didsProcessor)
}

func handleGetList(ctx context.Context, host Host, msg *dids.GetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list dids")

	all := try.To1(host.ListDIDs(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.Match))
	return &dids.List{
		Header:   didcomm.Header{Type: pltype.AdminDIDList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}

func handleCreate(ctx context.Context, host Host, msg *dids.Create) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "create did")

	d := try.To1(host.CreateDID(ctx, msg.Seed, msg.Metadata))
	glog.V(1).Infoln("new did:", d.DID)
	return didMsg(&d), nil
}

func handleSetMetadata(ctx context.Context, host Host, msg *dids.SetMetadata) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "set did metadata")

	d := try.To1(host.SetDIDMetadata(ctx, msg.DID, msg.Metadata))
	return didMsg(&d), nil
}

func handleGetPublic(ctx context.Context, host Host, _ *dids.GetPublic) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "get public did")

	return didMsg(try.To1(host.PublicDID(ctx))), nil
}

func handleSetPublic(ctx context.Context, host Host, msg *dids.SetPublic) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "set public did")

	d := try.To1(host.SetPublicDID(ctx, msg.DID))
	glog.V(1).Infoln("public did:", d.DID)
	return didMsg(&d), nil
}

func didMsg(d *dids.DID) *dids.DIDMsg {
	return &dids.DIDMsg{Header: didcomm.Header{Type: pltype.AdminDID}, Result: d}
}
