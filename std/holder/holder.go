/*
Package holder has the messages of the admin-holder family.
*/
package holder

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-agent-toolbox/std/issuer"
)

func init() {
	aries.Creator.Add(pltype.AdminHolderSendCredProposal, func() didcomm.Message { return &SendCredProposal{} })
	aries.Creator.Add(pltype.AdminHolderCredExchange, func() didcomm.Message { return &issuer.CredExchangeMsg{} })
	aries.Creator.Add(pltype.AdminHolderCredOfferAccept, func() didcomm.Message { return &CredOfferAccept{} })
	aries.Creator.Add(pltype.AdminHolderCredRequestSent, func() didcomm.Message { return &issuer.CredExchangeMsg{} })
	aries.Creator.Add(pltype.AdminHolderCredentialsGetList, func() didcomm.Message { return &CredentialsGetList{} })
	aries.Creator.Add(pltype.AdminHolderCredentialsList, func() didcomm.Message { return &CredentialsList{} })
	aries.Creator.Add(pltype.AdminHolderSendPresProposal, func() didcomm.Message { return &SendPresProposal{} })
	aries.Creator.Add(pltype.AdminHolderPresExchange, func() didcomm.Message { return &issuer.PresExchangeMsg{} })
	aries.Creator.Add(pltype.AdminHolderPresRequestApprove, func() didcomm.Message { return &PresRequestApprove{} })
	aries.Creator.Add(pltype.AdminHolderPresSent, func() didcomm.Message { return &issuer.PresExchangeMsg{} })
	aries.Creator.Add(pltype.AdminHolderPresentationsGetList, func() didcomm.Message { return &PresentationsGetList{} })
	aries.Creator.Add(pltype.AdminHolderPresentationsList, func() didcomm.Message { return &issuer.PresentationsList{} })
}

// Credential is a credential in the holder's wallet.
type Credential struct {
	Referent  string            `json:"referent"`
	SchemaID  string            `json:"schema_id"`
	CredDefID string            `json:"cred_def_id"`
	Attrs     map[string]string `json:"attrs"`
}

// PresAttr is an attribute the holder proposes to present.
type PresAttr struct {
	Name      string `json:"name" validate:"required"`
	CredDefID string `json:"cred_def_id,omitempty"`
	Value     string `json:"value,omitempty"`
}

type SendCredProposal struct {
	didcomm.Header
	ConnectionID string            `json:"connection_id" validate:"required"`
	CredDefID    string            `json:"cred_def_id" validate:"required"`
	Comment      string            `json:"comment,omitempty"`
	Attributes   []issuer.CredAttr `json:"attributes,omitempty" validate:"dive"`
}

func (m *SendCredProposal) Validate() error { return common.Validate(m) }

type CredOfferAccept struct {
	didcomm.Header
	ExchangeID string `json:"credential_exchange_id" validate:"required"`
}

func (m *CredOfferAccept) Validate() error { return common.Validate(m) }

// CredFilter selects wallet credentials. Empty fields match all.
type CredFilter struct {
	CredDefID string `json:"cred_def_id,omitempty"`
	SchemaID  string `json:"schema_id,omitempty"`
}

func (f CredFilter) Match(c Credential) bool {
	return (f.CredDefID == "" || f.CredDefID == c.CredDefID) &&
		(f.SchemaID == "" || f.SchemaID == c.SchemaID)
}

type CredentialsGetList struct {
	didcomm.Header
	decorator.WithPaginate
	CredFilter
}

func (m *CredentialsGetList) Validate() error { return common.Validate(m) }

type CredentialsList struct {
	didcomm.Header
	decorator.WithPage
	Results []Credential `json:"results"`
}

type SendPresProposal struct {
	didcomm.Header
	ConnectionID string     `json:"connection_id" validate:"required"`
	Comment      string     `json:"comment,omitempty"`
	Attributes   []PresAttr `json:"attributes" validate:"required,min=1,dive"`
}

func (m *SendPresProposal) Validate() error { return common.Validate(m) }

// PresRequestApprove answers a received presentation request. The host
// selects the credentials unless they are given as referents.
type PresRequestApprove struct {
	didcomm.Header
	ExchangeID   string            `json:"presentation_exchange_id" validate:"required"`
	Referents    map[string]string `json:"referents,omitempty"`
	SelfAttested map[string]string `json:"self_attested_attributes,omitempty"`
	Comment      string            `json:"comment,omitempty"`
}

func (m *PresRequestApprove) Validate() error { return common.Validate(m) }

type PresentationsGetList struct {
	didcomm.Header
	decorator.WithPaginate
	issuer.Filter
}

func (m *PresentationsGetList) Validate() error { return common.Validate(m) }
