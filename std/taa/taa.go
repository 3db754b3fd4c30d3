/*
Package taa has the messages of the admin-taa family for the ledger's
transaction author agreement.
*/
package taa

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
)

func init() {
	aries.Creator.Add(pltype.AdminTAAGet, func() didcomm.Message { return &Get{} })
	aries.Creator.Add(pltype.AdminTAA, func() didcomm.Message { return &TAAMsg{} })
	aries.Creator.Add(pltype.AdminTAAAccept, func() didcomm.Message { return &Accept{} })
	aries.Creator.Add(pltype.AdminTAAAccepted, func() didcomm.Message { return &Accepted{} })
	aries.Creator.Add(pltype.AdminTAAGetAcceptance, func() didcomm.Message { return &GetAcceptance{} })
	aries.Creator.Add(pltype.AdminTAAAcceptance, func() didcomm.Message { return &AcceptanceMsg{} })
}

// TAA is the transaction author agreement of the ledger and the acceptance
// mechanisms it allows.
type TAA struct {
	Version  string            `json:"version"`
	Text     string            `json:"text"`
	Digest   string            `json:"digest,omitempty"`
	AML      map[string]string `json:"aml,omitempty"`
	Required bool              `json:"taa_required"`
}

// Acceptance is the agent's acceptance of the TAA.
type Acceptance struct {
	Version   string `json:"version" validate:"required"`
	Text      string `json:"text" validate:"required"`
	Mechanism string `json:"mechanism" validate:"required"`
	Time      int64  `json:"time,omitempty"`
}

type Get struct {
	didcomm.Header
}

type TAAMsg struct {
	didcomm.Header
	TAA
}

type Accept struct {
	didcomm.Header
	Acceptance
}

func (m *Accept) Validate() error { return common.Validate(m) }

type Accepted struct {
	didcomm.Header
}

type GetAcceptance struct {
	didcomm.Header
}

// AcceptanceMsg has a nil Acceptance when the TAA isn't accepted yet.
type AcceptanceMsg struct {
	didcomm.Header
	Acceptance *Acceptance `json:"acceptance"`
}
