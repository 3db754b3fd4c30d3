// Package taa is the admin-taa protocol family.
package taa

import (
	"context"
	"fmt"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/taa"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var taaProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerTAAGet:           comm.Handle(handleGet),
		pltype.HandlerTAAAccept:        comm.Handle(handleAccept),
		pltype.HandlerTAAGetAcceptance: comm.Handle(handleGetAcceptance),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolAdminTAA, taaProcessor)
}

func handleGet(ctx context.Context, host Host, _ *taa.Get) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "get TAA")

	return &taa.TAAMsg{
		Header: didcomm.Header{Type: pltype.AdminTAA},
		TAA:    try.To1(host.TAA(ctx)),
	}, nil
}

// handleAccept accepts the current TAA. The version must match the ledger's
// and the mechanism must be one the ledger allows.
func handleAccept(ctx context.Context, host Host, msg *taa.Accept) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "accept TAA")

	current := try.To1(host.TAA(ctx))
	if current.Version != msg.Version {
		return nil, fmt.Errorf("%w: TAA version %s, current is %s",
			comm.ErrInvalid, msg.Version, current.Version)
	}
	if _, ok := current.AML[msg.Mechanism]; len(current.AML) > 0 && !ok {
		return nil, fmt.Errorf("%w: acceptance mechanism %s", comm.ErrInvalid, msg.Mechanism)
	}
	try.To(host.AcceptTAA(ctx, msg.Acceptance))
	glog.V(1).Infoln("TAA accepted, version:", msg.Version)
	return &taa.Accepted{Header: didcomm.Header{Type: pltype.AdminTAAAccepted}}, nil
}

func handleGetAcceptance(ctx context.Context, host Host, _ *taa.GetAcceptance) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "get TAA acceptance")

	return &taa.AcceptanceMsg{
		Header:     didcomm.Header{Type: pltype.AdminTAAAcceptance},
		Acceptance: try.To1(host.TAAAcceptance(ctx)),
	}, nil
}
