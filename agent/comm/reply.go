package comm

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// Validator is implemented by request messages which check their content
// before they are handled.
type Validator interface {
	Validate() error
}

// Reply sends msg to the connection of the packet as a reply to the packet's
// message. The reply gets a fresh @id and it's threaded to the request.
func Reply(ctx context.Context, packet Packet, msg didcomm.Message) error {
	h := msg.Hdr()
	h.ID = utils.UUID()
	req := packet.Message.Hdr()
	h.Thread = decorator.ReplyThread(req.ID, req.Thread)
	return packet.Receiver.Send(ctx, packet.ConnID, msg)
}

// Notify sends msg to the connection as a new message without a thread.
func Notify(ctx context.Context, r Receiver, connID string, msg didcomm.Message) error {
	msg.Hdr().ID = utils.UUID()
	return r.Send(ctx, connID, msg)
}

// NotifyAdmins sends a copy of msg to every admin connection of the host.
// Every copy has its own @id. A failure of one connection doesn't stop the
// others, and the first error is returned.
func NotifyAdmins(ctx context.Context, r Receiver, msg didcomm.Message) (err error) {
	defer err2.Handle(&err, "notify admins")

	lister, ok := r.(AdminLister)
	if !ok {
		return fmt.Errorf("%w: admin connection list", ErrNotSupported)
	}
	conns := try.To1(lister.AdminConnections(ctx))
	for _, connID := range conns {
		if serr := Notify(ctx, r, connID, shallowCopy(msg)); serr != nil {
			glog.Warningf("notify admin %s: %v", connID, serr)
			if err == nil {
				err = serr
			}
		}
	}
	return err
}

// shallowCopy copies the struct the msg points to, header included. Other
// messages are returned as is.
func shallowCopy(msg didcomm.Message) didcomm.Message {
	rv := reflect.ValueOf(msg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return msg
	}
	cp := reflect.New(rv.Elem().Type())
	cp.Elem().Set(rv.Elem())
	if m, ok := cp.Interface().(didcomm.Message); ok {
		return m
	}
	return msg
}

// ReplyProblem sends a problem report describing err as a reply to the
// packet's message.
func ReplyProblem(ctx context.Context, packet Packet, err error) error {
	return Reply(ctx, packet, common.NewProblemReport(ProblemCode(err), err.Error()))
}

// ProblemCode returns the problem report code for the error.
func ProblemCode(err error) string {
	switch {
	case errors.Is(err, ErrNotAdmin):
		return common.CodeAdminOnly
	case errors.Is(err, ErrNotSupported):
		return common.CodeNotSupported
	case errors.Is(err, ErrInvalid):
		return common.CodeInvalidRequest
	case errors.Is(err, ErrNotFound):
		return common.CodeNotFound
	}
	return common.CodeRequestFailed
}

// Host returns the receiver of the packet as the capability interface H.
func Host[H any](packet Packet) (h H, err error) {
	h, ok := packet.Receiver.(H)
	if !ok {
		return h, fmt.Errorf("%w: %T", ErrNotSupported, (*H)(nil))
	}
	return h, nil
}

// Msg returns the message of the packet as M and validates it when M is a
// Validator.
func Msg[M didcomm.Message](packet Packet) (m M, err error) {
	m, ok := packet.Message.(M)
	if !ok {
		return m, fmt.Errorf("%w: unexpected message %T", ErrInvalid, packet.Message)
	}
	if v, ok := any(m).(Validator); ok {
		if verr := v.Validate(); verr != nil {
			return m, fmt.Errorf("%w: %w", ErrInvalid, verr)
		}
	}
	return m, nil
}

// Handle builds a HandlerFunc for a request/reply pair. The f serves a request
// M with the host capability H and returns the reply message, a nil reply
// sends nothing. The message is checked before the host capability, so
// malformed requests are reported as invalid even if the host couldn't serve
// them.
func Handle[M didcomm.Message, H any](
	f func(ctx context.Context, host H, msg M) (didcomm.Message, error),
) HandlerFunc {
	return func(ctx context.Context, packet Packet) (err error) {
		defer err2.Handle(&err)

		msg := try.To1(Msg[M](packet))
		host := try.To1(Host[H](packet))
		reply := try.To1(f(ctx, host, msg))
		if reply == nil {
			return nil
		}
		return Reply(ctx, packet, reply)
	}
}
