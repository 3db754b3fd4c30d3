// Package issuer is the admin-issuer protocol family.
package issuer

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/issuer"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var issuerProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerIssuerSendCredential:       comm.Handle(handleSendCredential),
		pltype.HandlerIssuerRequestPresentation:  comm.Handle(handleRequestPresentation),
		pltype.HandlerIssuerCredentialsGetList:   comm.Handle(handleCredentialsGetList),
		pltype.HandlerIssuerPresentationsGetList: comm.Handle(handlePresentationsGetList),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminIssuer, issuerProcessor)
}

func handleSendCredential(ctx context.Context, host Host, msg *issuer.SendCredential) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send credential")

	ce := try.To1(host.SendCredential(ctx, msg.ConnectionID, msg.CredDefID, msg.Comment, msg.Attributes))
	glog.V(1).Infof("credential offer %s to %s", ce.ExchangeID, msg.ConnectionID)
	return issuer.NewCredExchangeMsg(pltype.AdminIssuerCredExchange, ce), nil
}

func handleRequestPresentation(ctx context.Context, host Host, msg *issuer.RequestPresentation) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "request presentation")

	pe := try.To1(host.RequestPresentation(ctx, msg.ConnectionID, msg.Comment, msg.ProofRequest))
	glog.V(1).Infof("presentation request %s to %s", pe.ExchangeID, msg.ConnectionID)
	return issuer.NewPresExchangeMsg(pltype.AdminIssuerPresExchange, pe), nil
}

func handleCredentialsGetList(ctx context.Context, host Host, msg *issuer.CredentialsGetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list issued credentials")

	all := try.To1(host.IssuedCredentials(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.MatchCred))
	return &issuer.CredentialsList{
		Header:   didcomm.Header{Type: pltype.AdminIssuerCredentialsList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}

func handlePresentationsGetList(ctx context.Context, host Host, msg *issuer.PresentationsGetList) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "list requested presentations")

	all := try.To1(host.RequestedPresentations(ctx))
	results, page := decorator.PageItems(msg.Paginate, utils.Filter(all, msg.Filter.MatchPres))
	return &issuer.PresentationsList{
		Header:   didcomm.Header{Type: pltype.AdminIssuerPresentationsList},
		WithPage: decorator.WithPage{Page: page},
		Results:  results,
	}, nil
}
