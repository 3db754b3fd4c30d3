// Package invitations is the admin-invitations protocol family.
package invitations

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/invitations"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var invitationProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerInvitationCreate:  comm.Handle(handleCreate),
		pltype.HandlerInvitationGetList: comm.Handle(handleGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminInvitations, invitationProcessor)
}

func handleCreate(ctx context.Context, host Host, msg *invitations.Create) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "create invitation")

	inv := try.To1(host.CreateInvitation(ctx, msg.Options))
	glog.V(1).Infoln("invitation created for connection:", inv.ConnectionID)
	return &invitations.InvitationMsg{
		Header:     didcomm.Header{Type: pltype.AdminInvitation},
		Invitation: inv,
	}, nil
}

func handleGetList(ctx context.Context, host Host, msg *invitations.GetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list invitations")

	results, page := decorator.PageItems(msg.Paginate, try.To1(host.ListInvitations(ctx)))
	return &invitations.List{
		Header:   didcomm.Header{Type: pltype.AdminInvitationList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}
