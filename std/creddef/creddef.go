/*
Package creddef has the messages of the admin-credential-definitions family.
*/
package creddef

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminCredDefSend, func() didcomm.Message { return &Send{} })
	aries.Creator.Add(pltype.AdminCredDefID, func() didcomm.Message { return &IDMsg{} })
	aries.Creator.Add(pltype.AdminCredDefGet, func() didcomm.Message { return &Get{} })
	aries.Creator.Add(pltype.AdminCredDef, func() didcomm.Message { return &CredDefMsg{} })
	aries.Creator.Add(pltype.AdminCredDefGetList, func() didcomm.Message { return &GetList{} })
	aries.Creator.Add(pltype.AdminCredDefList, func() didcomm.Message { return &List{} })
}

// CredDef is a credential definition the agent has written to the ledger.
type CredDef struct {
	CredDefID         string   `json:"cred_def_id"`
	SchemaID          string   `json:"schema_id"`
	SchemaName        string   `json:"schema_name,omitempty"`
	Tag               string   `json:"tag,omitempty"`
	SupportRevocation bool     `json:"support_revocation,omitempty"`
	Attributes        []string `json:"attributes,omitempty"`
}

type Send struct {
	didcomm.Header
	SchemaID          string `json:"schema_id" validate:"required"`
	Tag               string `json:"tag,omitempty"`
	SupportRevocation bool   `json:"support_revocation,omitempty"`
}

func (m *Send) Validate() error { return common.Validate(m) }

type IDMsg struct {
	didcomm.Header
	CredDefID string `json:"cred_def_id"`
}

type Get struct {
	didcomm.Header
	CredDefID string `json:"cred_def_id" validate:"required"`
}

func (m *Get) Validate() error { return common.Validate(m) }

type CredDefMsg struct {
	didcomm.Header
	CredDef
}

type GetList struct {
	didcomm.Header
	decorator.WithPaginate
}

func (m *GetList) Validate() error { return common.Validate(m) }

type List struct {
	didcomm.Header
	decorator.WithPage
	Results []CredDef `json:"results"`
}
