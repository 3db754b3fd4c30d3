// Package mediator is the admin-mediator protocol family.
package mediator

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/mediator"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var mediatorProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerMediationRequestsGetList: comm.Handle(handleRequestsGetList),
		pltype.HandlerMediationGrant:           comm.Handle(handleGrant),
		pltype.HandlerMediationDeny:            comm.Handle(handleDeny),
		pltype.HandlerKeylistsGetList:          comm.Handle(handleKeylistsGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminMediator, mediatorProcessor)
}

func handleRequestsGetList(ctx context.Context, host Host, msg *mediator.RequestsGetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list mediation requests")

	all := try.To1(host.MediationRequests(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.Match))
	return &mediator.Requests{
		Header:   didcomm.Header{Type: pltype.AdminMediationRequests},
		WithPage: decorator.WithPage{Page: page},
		Requests: results,
	}, nil
}

func handleGrant(ctx context.Context, host Host, msg *mediator.Grant) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "grant mediation")

	m := try.To1(host.GrantMediation(ctx, msg.MediationID))
	glog.V(1).Infoln("mediation granted:", m.MediationID, m.ConnectionID)
	return mediator.NewMediationMsg(pltype.AdminMediationGranted, m), nil
}

func handleDeny(ctx context.Context, host Host, msg *mediator.Deny) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "deny mediation")

	m := try.To1(host.DenyMediation(ctx, msg.MediationID, msg.MediatorTerms, msg.RecipientTerms))
	glog.V(1).Infoln("mediation denied:", m.MediationID, m.ConnectionID)
	return mediator.NewMediationMsg(pltype.AdminMediationDenied, m), nil
}

func handleKeylistsGetList(ctx context.Context, host Host, msg *mediator.KeylistsGetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list keylists")

	all := try.To1(host.RouteKeys(ctx))
	if msg.ConnectionID != "" {
		all = utils.Filter(all, func(k mediator.RouteKey) bool {
			return k.ConnectionID == msg.ConnectionID
		})
	}
	results, page := decorator.PageItems(msg.Paginate, all)
	return &mediator.Keylists{
		Header:   didcomm.Header{Type: pltype.AdminKeylists},
		WithPage: decorator.WithPage{Page: page},
		Keylists: results,
	}, nil
}
