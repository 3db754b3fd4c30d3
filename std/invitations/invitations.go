/*
Package invitations has the messages of the admin-invitations family.
*/
package invitations

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminInvitationCreate, func() didcomm.Message { return &Create{} })
	aries.Creator.Add(pltype.AdminInvitation, func() didcomm.Message { return &InvitationMsg{} })
	aries.Creator.Add(pltype.AdminInvitationGetList, func() didcomm.Message { return &GetList{} })
	aries.Creator.Add(pltype.AdminInvitationList, func() didcomm.Message { return &List{} })
}

// Options of a new invitation.
type Options struct {
	Label      string `json:"label,omitempty"`
	Alias      string `json:"alias,omitempty"`
	Role       string `json:"role,omitempty"`
	Group      string `json:"group,omitempty"`
	AutoAccept bool   `json:"auto_accept,omitempty"`
	MultiUse   bool   `json:"multi_use,omitempty"`
}

// Invitation is a pending invitation of the agent.
type Invitation struct {
	Options
	ConnectionID  string `json:"connection_id"`
	InvitationURL string `json:"invitation_url"`
	CreatedDate   string `json:"created_date,omitempty"`
}

type Create struct {
	didcomm.Header
	Options
}

func (m *Create) Validate() error { return common.Validate(m) }

type InvitationMsg struct {
	didcomm.Header
	Invitation
}

type GetList struct {
	didcomm.Header
	decorator.WithPaginate
}

func (m *GetList) Validate() error { return common.Validate(m) }

type List struct {
	didcomm.Header
	decorator.WithPage
	Results []Invitation `json:"results"`
}
