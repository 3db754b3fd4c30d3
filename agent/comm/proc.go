package comm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/golang/glog"
)

var (
	ErrNoHandler    = errors.New("no handler")
	ErrNotAdmin     = errors.New("connection is not admin")
	ErrNotSupported = errors.New("not supported by the agent")
	ErrInvalid      = errors.New("invalid request")
	ErrNotFound     = errors.New("not found")
)

// processor is a controller of all the protocol handlers. It keeps
// track of all the protocols and delivers the message accordingly. The
// processor takes the message and finds the correct protocol which finds the
// correct handler function.
//
// The protocol message processing structure has 2 levels. First level has
// protocol families and second level has the actual message handlers. The
// toolbox protocols are request/reply pairs, so they don't keep state.
type processor struct {
	lk sync.RWMutex

	// protHandlers is map to all protocols and their handlers. The key is the
	// family name in the message type.
	protHandlers map[string]ProtHandler
}

// Process delivers the protocol messages inside the packet to correct protocol.
func (p *processor) Process(ctx context.Context, packet Packet) (err error) {
	mt, err := didcomm.ParseType(packet.Type())
	if err != nil {
		glog.Warningf("cannot process message: %v", err)
		return fmt.Errorf("%w: %w", ErrNoHandler, err)
	}
	p.lk.RLock()
	handler, ok := p.protHandlers[mt.Family]
	p.lk.RUnlock()
	if !ok {
		glog.Warningf("no handler in processor for type: %s", packet.Type())
		return fmt.Errorf("%w: %s", ErrNoHandler, packet.Type())
	}
	return handler.Process(ctx, mt, packet)
}

func (p *processor) Add(family string, proc ProtHandler) {
	p.lk.Lock()
	defer p.lk.Unlock()
	if p.protHandlers == nil {
		p.protHandlers = make(map[string]ProtHandler)
	}
	p.protHandlers[family] = proc
}

// Families returns the registered protocol families in sorted order.
func (p *processor) Families() []string {
	p.lk.RLock()
	defer p.lk.RUnlock()
	families := make([]string, 0, len(p.protHandlers))
	for f := range p.protHandlers {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

// HandlerFunc is func type for protocol message handlers. We add them to
// protocol processors with the associated message name.
type HandlerFunc func(ctx context.Context, packet Packet) (err error)

// ProtHandler is an interface for whole protocol. Where HandlerFunc is handler
// for protocol message, the protocol handler is whole protocol group, all of
// the same message family.
type ProtHandler interface {
	Process(ctx context.Context, mt didcomm.MsgType, packet Packet) (err error)
}

// ProtProc is a protocol processor. It is struct for protocol handlers.
// Instances of it are the actual protocol handlers. Just declare var and the
// needed msg handlers (HandlerFunc) and register it to the processor.
type ProtProc struct {
	// Admin protocols are served only for admin connections.
	Admin bool

	Handlers map[string]HandlerFunc
}

// Process delivers the protocol message inside the packet to correct protocol
// function. Errors of the handler are reported to the sender with a problem
// report before they are returned.
func (p ProtProc) Process(ctx context.Context, mt didcomm.MsgType, packet Packet) (err error) {
	glog.V(1).Info("PROTOCOL type ", packet.Type())

	handler, ok := p.Handlers[mt.Name]
	if !ok {
		glog.Warningf("no handler in protocol %s for: %s", mt.Family, mt.Name)
		return fmt.Errorf("%w: %s", ErrNoHandler, packet.Type())
	}
	if p.Admin {
		err = checkAdmin(ctx, packet)
	}
	if err == nil {
		err = handler(ctx, packet)
	}
	if err != nil {
		glog.Warningf("%s from %s: %v", packet.Type(), packet.ConnID, err)
		if rerr := ReplyProblem(ctx, packet, err); rerr != nil {
			glog.Errorf("problem report to %s: %v", packet.ConnID, rerr)
		}
	}
	return err
}

func checkAdmin(ctx context.Context, packet Packet) error {
	admin, err := packet.Receiver.IsAdmin(ctx, packet.ConnID)
	if err != nil {
		return fmt.Errorf("admin check: %w", err)
	}
	if !admin {
		return fmt.Errorf("%w: %s", ErrNotAdmin, packet.ConnID)
	}
	return nil
}

var Proc = &processor{}
