/*
Package dids has the messages of the admin-dids family.
*/
package dids

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminDIDGetList, func() didcomm.Message { return &GetList{} })
	aries.Creator.Add(pltype.AdminDIDList, func() didcomm.Message { return &List{} })
	aries.Creator.Add(pltype.AdminDIDCreate, func() didcomm.Message { return &Create{} })
	aries.Creator.Add(pltype.AdminDID, func() didcomm.Message { return &DIDMsg{} })
	aries.Creator.Add(pltype.AdminDIDSetMetadata, func() didcomm.Message { return &SetMetadata{} })
	aries.Creator.Add(pltype.AdminDIDGetPublic, func() didcomm.Message { return &GetPublic{} })
	aries.Creator.Add(pltype.AdminDIDSetPublic, func() didcomm.Message { return &SetPublic{} })
}

// DID is a DID of the agent's wallet.
type DID struct {
	DID      string         `json:"did"`
	Verkey   string         `json:"verkey"`
	Public   bool           `json:"public"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Filter selects DIDs. Empty fields match all.
type Filter struct {
	DID    string `json:"did,omitempty"`
	Verkey string `json:"verkey,omitempty" validate:"omitempty,verkey"`
	Public *bool  `json:"public,omitempty"`
}

// Match tells if the DID passes the filter.
func (f Filter) Match(d DID) bool {
	return (f.DID == "" || f.DID == d.DID) &&
		(f.Verkey == "" || f.Verkey == d.Verkey) &&
		(f.Public == nil || *f.Public == d.Public)
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
	Results []DID `json:"result"`
}

// Create creates a new local DID. The seed is optional.
type Create struct {
	didcomm.Header
	Seed     string         `json:"seed,omitempty" validate:"seed"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (m *Create) Validate() error { return common.Validate(m) }

// DIDMsg is the reply for all the requests returning a single DID. Result is
// nil when there is no public DID.
type DIDMsg struct {
	didcomm.Header
	Result *DID `json:"result"`
}

type SetMetadata struct {
	didcomm.Header
	DID      string         `json:"did" validate:"required"`
	Metadata map[string]any `json:"metadata"`
}

func (m *SetMetadata) Validate() error { return common.Validate(m) }

type GetPublic struct {
	didcomm.Header
}

type SetPublic struct {
	didcomm.Header
	DID string `json:"did" validate:"required"`
}

func (m *SetPublic) Validate() error { return common.Validate(m) }
