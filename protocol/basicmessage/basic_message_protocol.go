/*
Package basicmessage implements two protocol families. The Aries basic message
family receives the messages from the agent's connections and stores them.
The admin-basicmessage family lets the admin connections send basic messages,
and query and delete the stored ones.
*/
package basicmessage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/agent/store"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/basicmessage"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// basicMessageProcessor handles the basic messages of the pairwise
// connections. Anyone can send them.
var basicMessageProcessor = comm.ProtProc{
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerMessage: handleBasicMessage,
	},
}

var adminProcessor = comm.ProtProc{
	Admin: true,
	Handlers: map[string]comm.HandlerFunc{
		pltype.HandlerBasicMessageSend:   comm.Handle(handleSend),
		pltype.HandlerBasicMessageGet:    comm.Handle(handleGet),
		pltype.HandlerBasicMessageDelete: comm.Handle(handleDelete),
	},
}

func init() {
	comm.Proc.Add(pltype.ProtocolBasicMessage, basicMessageProcessor)
	comm.Proc.Add(pltype.ProtocolAdminBasicMessage, adminProcessor)
}

// handleBasicMessage stores the received message and pushes it to the admin
// connections if that's enabled. Nothing is replied to the sender.
func handleBasicMessage(ctx context.Context, packet comm.Packet) (err error) {
	defer err2.Handle(&err, "basic message")

	msg := try.To1(comm.Msg[*basicmessage.Basicmessage](packet))
	s := try.To1(records())
	r := store.Record{
		ConnID:   packet.ConnID,
		MsgID:    msg.ID,
		Content:  msg.Content,
		SentTime: msg.SentTime.Time,
		State:    store.StateReceived,
	}
	if r.SentTime.IsZero() {
		r.SentTime = time.Now().UTC()
	}
	if r.MsgID == "" {
		r.MsgID = utils.UUID()
	}
	try.To(s.Add(&r))

	if glog.V(3) {
		glog.Info("basic message from:", r.ConnID)
		glog.Info("sent time:", msg.SentTime)
		glog.Info("content: ", msg.Content)
	}

	if utils.Settings.NotifyAdmins() {
		notification := &basicmessage.New{
			Header:       didcomm.Header{Type: pltype.AdminBasicMessageNew},
			ConnectionID: r.ConnID,
			Message:      messageInfo(r),
		}
		if nerr := comm.NotifyAdmins(ctx, packet.Receiver, notification); nerr != nil {
			glog.Warningln("basic message notification:", nerr)
		}
	}
	return nil
}

func handleSend(ctx context.Context, host comm.Receiver, msg *basicmessage.Send) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "send basic message")

	s := try.To1(records())
	bm := basicmessage.NewBasicmessage(msg.Content)
	try.To(comm.Notify(ctx, host, msg.ConnectionID, bm))

	r := store.Record{
		ConnID:   msg.ConnectionID,
		MsgID:    bm.ID,
		Content:  bm.Content,
		SentTime: bm.SentTime.Time,
		State:    store.StateSent,
	}
	try.To(s.Add(&r))
	glog.V(1).Infoln("basic message sent to:", msg.ConnectionID)

	return &basicmessage.Sent{
		Header:       didcomm.Header{Type: pltype.AdminBasicMessageSent},
		ConnectionID: msg.ConnectionID,
		Message:      messageInfo(r),
	}, nil
}

// handleGet reads the messages lazily from the store cursor, so only the
// requested page is decoded.
func handleGet(_ context.Context, _ comm.Receiver, msg *basicmessage.Get) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "get basic messages")

	s := try.To1(records())
	c := try.To1(s.Cursor(msg.ConnectionID))
	defer c.Close()

	results, page := decorator.ApplyOptional[store.Record](msg.Paginate, decorator.NewStream[store.Record](c))
	infos := make([]basicmessage.MessageInfo, len(results))
	for i, r := range results {
		infos[i] = messageInfo(r)
	}
	return &basicmessage.Messages{
		Header:       didcomm.Header{Type: pltype.AdminBasicMessageList},
		WithPage:     decorator.WithPage{Page: page},
		ConnectionID: msg.ConnectionID,
		Messages:     infos,
	}, nil
}

func handleDelete(_ context.Context, _ comm.Receiver, msg *basicmessage.Delete) (_ didcomm.Message, err error) {
	defer err2.Handle(&err, "delete basic messages")

	s := try.To1(records())
	n, err := s.Delete(msg.ConnectionID, msg.MessageIDs...)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", comm.ErrNotFound, err)
	}
	try.To(err)

	return &basicmessage.Deleted{
		Header:       didcomm.Header{Type: pltype.AdminBasicMessageDeleted},
		ConnectionID: msg.ConnectionID,
		MessageIDs:   msg.MessageIDs,
		Count:        n,
	}, nil
}
