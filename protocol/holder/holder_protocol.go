// Package holder is the admin-holder protocol family.
package holder

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/holder"
	"github.com/findy-network/findy-agent-toolbox/std/issuer"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var holderProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerHolderSendCredProposal:     comm.Handle(handleSendCredProposal),
		pltype.HandlerHolderCredOfferAccept:      comm.Handle(handleCredOfferAccept),
		pltype.HandlerHolderCredentialsGetList:   comm.Handle(handleCredentialsGetList),
		pltype.HandlerHolderSendPresProposal:     comm.Handle(handleSendPresProposal),
		pltype.HandlerHolderPresRequestApprove:   comm.Handle(handlePresRequestApprove),
		pltype.HandlerHolderPresentationsGetList: comm.Handle(handlePresentationsGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminHolder, holderProcessor)
}

func handleSendCredProposal(ctx context.Context, host Host, msg *holder.SendCredProposal) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send credential proposal")

	ce := try.To1(host.SendCredProposal(ctx, msg.ConnectionID, msg.CredDefID, msg.Comment, msg.Attributes))
	return issuer.NewCredExchangeMsg(pltype.AdminHolderCredExchange, ce), nil
}

func handleCredOfferAccept(ctx context.Context, host Host, msg *holder.CredOfferAccept) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "accept credential offer")

	ce := try.To1(host.AcceptCredOffer(ctx, msg.ExchangeID))
	glog.V(1).Infoln("credential request sent:", ce.ExchangeID)
	return issuer.NewCredExchangeMsg(pltype.AdminHolderCredRequestSent, ce), nil
}

func handleCredentialsGetList(ctx context.Context, host Host, msg *holder.CredentialsGetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list credentials")

	all := try.To1(host.HeldCredentials(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.CredFilter.Match))
	return &holder.CredentialsList{
		Header:   didcomm.Header{Type: pltype.AdminHolderCredentialsList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}

func handleSendPresProposal(ctx context.Context, host Host, msg *holder.SendPresProposal) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send presentation proposal")

	pe := try.To1(host.SendPresProposal(ctx, msg.ConnectionID, msg.Comment, msg.Attributes))
	return issuer.NewPresExchangeMsg(pltype.AdminHolderPresExchange, pe), nil
}

func handlePresRequestApprove(ctx context.Context, host Host, msg *holder.PresRequestApprove) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "approve presentation request")

	pe := try.To1(host.ApprovePresRequest(ctx, msg.ExchangeID, msg.Referents, msg.SelfAttested))
	glog.V(1).Infoln("presentation sent:", pe.ExchangeID)
	return issuer.NewPresExchangeMsg(pltype.AdminHolderPresSent, pe), nil
}

func handlePresentationsGetList(ctx context.Context, host Host, msg *holder.PresentationsGetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list presentations")

	all := try.To1(host.SentPresentations(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.MatchPres))
	return &issuer.PresentationsList{
		Header:   didcomm.Header{Type: pltype.AdminHolderPresentationsList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}
