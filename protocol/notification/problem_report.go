/*
Package notification handles the problem reports the agent's connections send.
They are logged and never answered, so two agents can't end up sending problem
reports to each other in a loop.
*/
package notification

import (
	"context"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var processor = comm.ProtProc{
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerProblemReport: handleProblemReport,
		pltype.HandlerAck:           handleAck,
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolNotification, processor)
}

func handleProblemReport(_ context.Context, packet comm.Packet) (err error) {
	defer err2.Handle(&err, "problem report")

	pr := try.To1(comm.Msg[*common.ProblemReport](packet))
	explain := pr.Description.En
	if explain == "" {
		explain = pr.ExplainLongTxt
	}
	glog.Warningf("problem report from %s (thread %s): %s: %s",
		packet.ConnID, pr.ThreadID(), pr.Description.Code, explain)
	return nil
}

func handleAck(_ context.Context, packet comm.Packet) error {
	glog.V(3).Infof("ack from %s, thread: %s", packet.ConnID, packet.Message.Hdr().ThreadID())
	return nil
}
