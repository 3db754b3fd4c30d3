// Package routing is the admin-routing protocol family.
package routing

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/mediator"
	"github.com/findy-network/findy-agent-toolbox/std/routing"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var routingProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerMediationRequestSend: comm.Handle(handleMediationRequestSend),
		pltype.HandlerKeylistUpdateSend:    comm.Handle(handleKeylistUpdateSend),
		pltype.HandlerMediationGetList:     comm.Handle(handleMediationGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminRouting, routingProcessor)
}

func handleMediationRequestSend(ctx context.Context, host Host, msg *routing.MediationRequestSend) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send mediation request")

	m := try.To1(host.RequestMediation(ctx, msg.ConnectionID, msg.MediatorTerms, msg.RecipientTerms))
	glog.V(1).Infoln("mediation requested:", m.MediationID, msg.ConnectionID)
	return mediator.NewMediationMsg(pltype.AdminMediationRequestSent, m), nil
}

func handleKeylistUpdateSend(ctx context.Context, host Host, msg *routing.KeylistUpdateSend) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send keylist update")

	try.To(host.UpdateKeylist(ctx, msg.ConnectionID, msg.Updates))
	return &routing.KeylistUpdateSent{
		Header:       didcomm.Header{Type: pltype.AdminKeylistUpdateSent},
		ConnectionID: msg.ConnectionID,
		Updates:      msg.Updates,
	}, nil
}

func handleMediationGetList(ctx context.Context, host Host, msg *routing.MediationGetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list mediations")

	all := try.To1(host.Mediations(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.Match))
	return &routing.MediationList{
		Header:   didcomm.Header{Type: pltype.AdminMediationList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}
