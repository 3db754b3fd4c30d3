/*
Package connections is the admin-connections protocol family. Besides the
request handlers it has Connected which the host calls when a connection
becomes active, and which pushes the connection to the admin connections.
*/
package connections

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/connections"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var connectionsProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerConnGetList:           comm.Handle(handleGetList),
		pltype.HandlerConnGet:               comm.Handle(handleGet),
		pltype.HandlerConnUpdate:            comm.Handle(handleUpdate),
		pltype.HandlerConnDelete:            comm.Handle(handleDelete),
		pltype.HandlerConnReceiveInvitation: comm.Handle(handleReceiveInvitation),
		pltype.HandlerConnAcceptInvitation:  comm.Handle(handleAcceptInvitation),
		pltype.HandlerConnAcceptRequest:     comm.Handle(handleAcceptRequest),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminConnections, connectionsProcessor)
}

// Connected notifies all the admin connections that the connection is made.
// The receiver must implement comm.AdminLister.
func Connected(ctx context.Context, r comm.Receiver, c connections.Connection) error {
	glog.V(1).Infoln("connected:", c.ConnectionID)
	return comm.NotifyAdmins(ctx, r, connections.NewConnectionMsg(pltype.AdminConnConnected, c))
}

func connectionMsg(c connections.Connection) *connections.ConnectionMsg {
	return connections.NewConnectionMsg(pltype.AdminConnConnection, c)
}

func handleGetList(ctx context.Context, host Host, msg *connections.GetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list connections")

	all := try.To1(host.ListConnections(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.Match))
	return &connections.List{
		Header:      didcomm.Header{Type: pltype.AdminConnList},
		WithPage:    decorator.WithPage{Page: page},
		Connections: results,
	}, nil
}

func handleGet(ctx context.Context, host Host, msg *connections.Get) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "get connection")

	return connectionMsg(try.To1(host.Connection(ctx, msg.ConnectionID))), nil
}

func handleUpdate(ctx context.Context, host Host, msg *connections.Update) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "update connection")

	c := try.To1(host.UpdateConnection(ctx, msg.ConnectionID, msg.Label, msg.Role))
	return connectionMsg(c), nil
}

func handleDelete(ctx context.Context, host Host, msg *connections.Delete) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "delete connection")

	try.To(host.DeleteConnection(ctx, msg.ConnectionID))
	glog.V(1).Infoln("connection deleted:", msg.ConnectionID)
	return &connections.Deleted{
		Header:       didcomm.Header{Type: pltype.AdminConnDeleted},
		ConnectionID: msg.ConnectionID,
	}, nil
}

func handleReceiveInvitation(ctx context.Context, host Host, msg *connections.ReceiveInvitation) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "receive invitation")

	return connectionMsg(try.To1(host.ReceiveInvitation(ctx, msg.Invitation, msg.AutoAccept))), nil
}

func handleAcceptInvitation(ctx context.Context, host Host, msg *connections.AcceptInvitation) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "accept invitation")

	return connectionMsg(try.To1(host.AcceptInvitation(ctx, msg.ConnectionID))), nil
}

func handleAcceptRequest(ctx context.Context, host Host, msg *connections.AcceptRequest) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "accept request")

	return connectionMsg(try.To1(host.AcceptRequest(ctx, msg.ConnectionID))), nil
}
