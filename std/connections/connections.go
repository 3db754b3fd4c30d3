/*
Package connections has the messages of the admin-connections family.
*/
package connections

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminConnGetList, func() didcomm.Message { return &GetList{} })
	aries.Creator.Add(pltype.AdminConnList, func() didcomm.Message { return &List{} })
	aries.Creator.Add(pltype.AdminConnGet, func() didcomm.Message { return &Get{} })
	aries.Creator.Add(pltype.AdminConnConnection, func() didcomm.Message { return &ConnectionMsg{} })
	aries.Creator.Add(pltype.AdminConnUpdate, func() didcomm.Message { return &Update{} })
	aries.Creator.Add(pltype.AdminConnDelete, func() didcomm.Message { return &Delete{} })
	aries.Creator.Add(pltype.AdminConnDeleted, func() didcomm.Message { return &Deleted{} })
	aries.Creator.Add(pltype.AdminConnReceiveInvitation, func() didcomm.Message { return &ReceiveInvitation{} })
	aries.Creator.Add(pltype.AdminConnAcceptInvitation, func() didcomm.Message { return &AcceptInvitation{} })
	aries.Creator.Add(pltype.AdminConnAcceptRequest, func() didcomm.Message { return &AcceptRequest{} })
	aries.Creator.Add(pltype.AdminConnConnected, func() didcomm.Message { return &ConnectionMsg{} })
}

// Connection states
const (
	StateInvitation = "invitation"
	StateRequest    = "request"
	StateResponse   = "response"
	StateActive     = "active"
	StateError      = "error"
)

// Connection is a pairwise connection of the agent.
type Connection struct {
	ConnectionID string `json:"connection_id"`
	State        string `json:"state"`
	MyDID        string `json:"my_did,omitempty"`
	TheirDID     string `json:"their_did,omitempty"`
	Label        string `json:"their_label,omitempty"`
	Role         string `json:"their_role,omitempty"`
	Alias        string `json:"alias,omitempty"`
	Initiator    string `json:"initiator,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Filter selects connections. Empty fields match all.
type Filter struct {
	State     string `json:"state,omitempty"`
	MyDID     string `json:"my_did,omitempty"`
	TheirDID  string `json:"their_did,omitempty"`
	TheirRole string `json:"their_role,omitempty"`
}

// Match tells if the connection passes the filter.
func (f Filter) Match(c Connection) bool {
	return (f.State == "" || f.State == c.State) &&
		(f.MyDID == "" || f.MyDID == c.MyDID) &&
		(f.TheirDID == "" || f.TheirDID == c.TheirDID) &&
		(f.TheirRole == "" || f.TheirRole == c.Role)
}

type GetList struct {
	didcomm.Header
	decorator.WithPaginate
	Filter
}

func (m *GetList) Validate() error { return common.Validate(m) }

type List struct {
	didcomm.Header
	decorator.WithPage
	Connections []Connection `json:"results"`
}

type Get struct {
	didcomm.Header
	ConnectionID string `json:"connection_id" validate:"required"`
}

func (m *Get) Validate() error { return common.Validate(m) }

// ConnectionMsg is the reply for all the requests returning a single
// connection. It's also pushed as connected when a connection completes.
type ConnectionMsg struct {
	didcomm.Header
	Connection
}

func NewConnectionMsg(t string, c Connection) *ConnectionMsg {
	return &ConnectionMsg{Header: didcomm.Header{Type: t}, Connection: c}
}

// Update sets the label and the role of the connection. Empty values are
// left unchanged.
type Update struct {
	didcomm.Header
	ConnectionID string `json:"connection_id" validate:"required"`
	Label        string `json:"label,omitempty"`
	Role         string `json:"role,omitempty"`
}

func (m *Update) Validate() error { return common.Validate(m) }

type Delete struct {
	didcomm.Header
	ConnectionID string `json:"connection_id" validate:"required"`
}

func (m *Delete) Validate() error { return common.Validate(m) }

type Deleted struct {
	didcomm.Header
	ConnectionID string `json:"connection_id"`
}

type ReceiveInvitation struct {
	didcomm.Header
	Invitation string `json:"invitation" validate:"required"`
	AutoAccept bool   `json:"auto_accept,omitempty"`
}

func (m *ReceiveInvitation) Validate() error { return common.Validate(m) }

type AcceptInvitation struct {
	didcomm.Header
	ConnectionID string `json:"connection_id" validate:"required"`
}

func (m *AcceptInvitation) Validate() error { return common.Validate(m) }

type AcceptRequest struct {
	didcomm.Header
	ConnectionID string `json:"connection_id" validate:"required"`
}

func (m *AcceptRequest) Validate() error { return common.Validate(m) }
