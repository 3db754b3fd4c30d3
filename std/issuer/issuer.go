/*
Package issuer has the messages of the admin-issuer family. The credential
and presentation exchange records are shared with the holder family.
*/
package issuer

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminIssuerSendCredential, func() didcomm.Message { return &SendCredential{} })
	aries.Creator.Add(pltype.AdminIssuerCredExchange, func() didcomm.Message { return &CredExchangeMsg{} })
	aries.Creator.Add(pltype.AdminIssuerRequestPresentation, func() didcomm.Message { return &RequestPresentation{} })
	aries.Creator.Add(pltype.AdminIssuerPresExchange, func() didcomm.Message { return &PresExchangeMsg{} })
	aries.Creator.Add(pltype.AdminIssuerCredentialsGetList, func() didcomm.Message { return &CredentialsGetList{} })
	aries.Creator.Add(pltype.AdminIssuerCredentialsList, func() didcomm.Message { return &CredentialsList{} })
	aries.Creator.Add(pltype.AdminIssuerPresentationsGetList, func() didcomm.Message { return &PresentationsGetList{} })
	aries.Creator.Add(pltype.AdminIssuerPresentationsList, func() didcomm.Message { return &PresentationsList{} })
}

// CredAttr is a credential attribute value.
type CredAttr struct {
	Name     string `json:"name" validate:"required"`
	MimeType string `json:"mime-type,omitempty"`
	Value    string `json:"value"`
}

// CredExchange is a credential exchange record of the agent.
type CredExchange struct {
	ExchangeID   string     `json:"credential_exchange_id"`
	ConnectionID string     `json:"connection_id"`
	CredDefID    string     `json:"cred_def_id,omitempty"`
	State        string     `json:"state"`
	Role         string     `json:"role,omitempty"`
	Attributes   []CredAttr `json:"attributes,omitempty"`
	CreatedAt    string     `json:"created_at,omitempty"`
	UpdatedAt    string     `json:"updated_at,omitempty"`
}

// ProofAttr is a requested attribute of a proof request.
type ProofAttr struct {
	Name         string              `json:"name" validate:"required"`
	Restrictions []map[string]string `json:"restrictions,omitempty"`
}

// ProofPredicate is a requested predicate of a proof request.
type ProofPredicate struct {
	Name         string              `json:"name" validate:"required"`
	PType        string              `json:"p_type" validate:"oneof=< <= >= >"`
	PValue       int64               `json:"p_value"`
	Restrictions []map[string]string `json:"restrictions,omitempty"`
}

type ProofRequest struct {
	Name                string                    `json:"name,omitempty"`
	Version             string                    `json:"version,omitempty"`
	RequestedAttributes map[string]ProofAttr      `json:"requested_attributes" validate:"required_without=RequestedPredicates,dive"`
	RequestedPredicates map[string]ProofPredicate `json:"requested_predicates,omitempty" validate:"dive"`
}

// PresExchange is a presentation exchange record of the agent.
type PresExchange struct {
	ExchangeID   string        `json:"presentation_exchange_id"`
	ConnectionID string        `json:"connection_id"`
	State        string        `json:"state"`
	Role         string        `json:"role,omitempty"`
	Verified     string        `json:"verified,omitempty"`
	Request      *ProofRequest `json:"presentation_request,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
	UpdatedAt    string        `json:"updated_at,omitempty"`
}

// Filter selects exchange records. Empty fields match all.
type Filter struct {
	ConnectionID string `json:"connection_id,omitempty"`
	State        string `json:"state,omitempty"`
}

func (f Filter) MatchCred(c CredExchange) bool {
	return (f.ConnectionID == "" || f.ConnectionID == c.ConnectionID) &&
		(f.State == "" || f.State == c.State)
}

func (f Filter) MatchPres(p PresExchange) bool {
	return (f.ConnectionID == "" || f.ConnectionID == p.ConnectionID) &&
		(f.State == "" || f.State == p.State)
}

type SendCredential struct {
	didcomm.Header
	ConnectionID string     `json:"connection_id" validate:"required"`
	CredDefID    string     `json:"cred_def_id" validate:"required"`
	Comment      string     `json:"comment,omitempty"`
	Attributes   []CredAttr `json:"attributes" validate:"required,min=1,dive"`
}

func (m *SendCredential) Validate() error { return common.Validate(m) }

// CredExchangeMsg is the reply for the requests returning a credential
// exchange record. The holder family uses it too with its own types.
type CredExchangeMsg struct {
	didcomm.Header
	CredExchange
}

func NewCredExchangeMsg(t string, ce CredExchange) *CredExchangeMsg {
	return &CredExchangeMsg{Header: didcomm.Header{Type: t}, CredExchange: ce}
}

type RequestPresentation struct {
	didcomm.Header
	ConnectionID string       `json:"connection_id" validate:"required"`
	Comment      string       `json:"comment,omitempty"`
	ProofRequest ProofRequest `json:"proof_request"`
}

func (m *RequestPresentation) Validate() error { return common.Validate(m) }

// PresExchangeMsg is the reply for the requests returning a presentation
// exchange record. The holder family uses it too with its own types.
type PresExchangeMsg struct {
	didcomm.Header
	PresExchange
}

func NewPresExchangeMsg(t string, pe PresExchange) *PresExchangeMsg {
	return &PresExchangeMsg{Header: didcomm.Header{Type: t}, PresExchange: pe}
}

type CredentialsGetList struct {
	didcomm.Header
	decorator.WithPaginate
	Filter
}

func (m *CredentialsGetList) Validate() error { return common.Validate(m) }

type CredentialsList struct {
	didcomm.Header
	decorator.WithPage
	Results []CredExchange `json:"results"`
}

type PresentationsGetList struct {
	didcomm.Header
	decorator.WithPaginate
	Filter
}

func (m *PresentationsGetList) Validate() error { return common.Validate(m) }

type PresentationsList struct {
	didcomm.Header
	decorator.WithPage
	Results []PresExchange `json:"results"`
}
