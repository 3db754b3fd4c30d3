package comm

import (
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
)

// Packet is an incoming message with the connection it came from and the
// host which received it.
type Packet struct {
	Message  didcomm.Message
	ConnID   string
	Receiver Receiver
}

func (p Packet) Type() string {
	return p.Message.Hdr().Type
}

func (p Packet) ID() string {
	return p.Message.Hdr().ID
}
