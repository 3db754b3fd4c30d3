/*
Package routing has the messages of the admin-routing family, the recipient
side of the coordinate mediation protocol.
*/
package routing

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/mediator"
)

func init() {
	aries.Creator.Add(pltype.AdminMediationRequestSend, func() didcomm.Message { return &MediationRequestSend{} })
	aries.Creator.Add(pltype.AdminMediationRequestSent, func() didcomm.Message { return &mediator.MediationMsg{} })
	aries.Creator.Add(pltype.AdminKeylistUpdateSend, func() didcomm.Message { return &KeylistUpdateSend{} })
	aries.Creator.Add(pltype.AdminKeylistUpdateSent, func() didcomm.Message { return &KeylistUpdateSent{} })
	aries.Creator.Add(pltype.AdminMediationGetList, func() didcomm.Message { return &MediationGetList{} })
	aries.Creator.Add(pltype.AdminMediationList, func() didcomm.Message { return &MediationList{} })
}

// Keylist update actions
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

type MediationRequestSend struct {
	didcomm.Header
	ConnectionID   string   `json:"connection_id" validate:"required"`
	MediatorTerms  []string `json:"mediator_terms,omitempty"`
	RecipientTerms []string `json:"recipient_terms,omitempty"`
}

func (m *MediationRequestSend) Validate() error { return common.Validate(m) }

type KeylistUpdate struct {
	RecipientKey string `json:"recipient_key" validate:"verkey"`
	Action       string `json:"action" validate:"oneof=add remove"`
}

type KeylistUpdateSend struct {
	didcomm.Header
	ConnectionID string          `json:"connection_id" validate:"required"`
	Updates      []KeylistUpdate `json:"updates" validate:"required,min=1,dive"`
}

func (m *KeylistUpdateSend) Validate() error { return common.Validate(m) }

type KeylistUpdateSent struct {
	didcomm.Header
	ConnectionID string          `json:"connection_id"`
	Updates      []KeylistUpdate `json:"updates"`
}

type MediationGetList struct {
	didcomm.Header
	decorator.WithPaginate
	mediator.Filter
}

func (m *MediationGetList) Validate() error { return common.Validate(m) }

type MediationList struct {
	didcomm.Header
	decorator.WithPage
	Results []mediator.Mediation `json:"results"`
}
