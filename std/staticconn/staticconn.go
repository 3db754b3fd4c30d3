/*
Package staticconn has the messages of the admin-static-connections family.
Static connections are made without the connection protocol, both sides get
the other's DID, verkey and endpoint out of band.
*/
package staticconn

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminStaticConnCreate, func() didcomm.Message { return &Create{} })
	aries.Creator.Add(pltype.AdminStaticConnInfo, func() didcomm.Message { return &Info{} })
	aries.Creator.Add(pltype.AdminStaticConnGetList, func() didcomm.Message { return &GetList{} })
	aries.Creator.Add(pltype.AdminStaticConnList, func() didcomm.Message { return &List{} })
}

// Their is the other side of a static connection.
type Their struct {
	Label    string `json:"label,omitempty"`
	Role     string `json:"role,omitempty"`
	DID      string `json:"static_did" validate:"required"`
	Verkey   string `json:"static_key" validate:"verkey"`
	Endpoint string `json:"static_endpoint,omitempty" validate:"omitempty,url"`
}

// StaticConnection is a static connection of the agent.
type StaticConnection struct {
	ConnectionID  string `json:"connection_id"`
	Label         string `json:"their_label,omitempty"`
	Role          string `json:"their_role,omitempty"`
	MyDID         string `json:"my_did"`
	TheirDID      string `json:"their_did"`
	TheirVerkey   string `json:"their_verkey"`
	TheirEndpoint string `json:"their_endpoint,omitempty"`
}

type Create struct {
	didcomm.Header
	Their
}

func (m *Create) Validate() error { return common.Validate(m) }

// Ours is our side of a new static connection for the other agent.
type Ours struct {
	ConnectionID string `json:"connection_id"`
	DID          string `json:"did"`
	Verkey       string `json:"verkey"`
	Endpoint     string `json:"endpoint"`
}

type Info struct {
	didcomm.Header
	Ours
}

// Filter selects static connections. Empty fields match all.
type Filter struct {
	TheirDID    string `json:"their_did,omitempty"`
	TheirVerkey string `json:"their_verkey,omitempty"`
}

func (f Filter) Match(c StaticConnection) bool {
	return (f.TheirDID == "" || f.TheirDID == c.TheirDID) &&
		(f.TheirVerkey == "" || f.TheirVerkey == c.TheirVerkey)
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
	Results []StaticConnection `json:"results"`
}
