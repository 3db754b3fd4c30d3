// Package staticconn is the admin-static-connections protocol family.
package staticconn

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/staticconn"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var staticProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerStaticConnCreate:  comm.Handle(handleCreate),
		pltype.HandlerStaticConnGetList: comm.Handle(handleGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminStaticConns, staticProcessor)
}

func handleCreate(ctx context.Context, host Host, msg *staticconn.Create) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "create static connection")

	ours := try.To1(host.CreateStaticConnection(ctx, msg.Their))
	glog.V(1).Infof("static connection %s to %s", ours.ConnectionID, msg.DID)
	return &staticconn.Info{
		Header: didcomm.Header{Type: pltype.AdminStaticConnInfo},
		Ours:   ours,
	}, nil
}

func handleGetList(ctx context.Context, host Host, msg *staticconn.GetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list static connections")

	all := try.To1(host.StaticConnections(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.Match))
	return &staticconn.List{
		Header:   didcomm.Header{Type: pltype.AdminStaticConnList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}
