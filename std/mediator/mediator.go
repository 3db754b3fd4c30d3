/*
Package mediator has the messages of the admin-mediator family, the mediator
side of the coordinate mediation protocol.
*/
package mediator

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminMediationRequestsGetList, func() didcomm.Message { return &RequestsGetList{} })
	aries.Creator.Add(pltype.AdminMediationRequests, func() didcomm.Message { return &Requests{} })
	aries.Creator.Add(pltype.AdminMediationGrant, func() didcomm.Message { return &Grant{} })
	aries.Creator.Add(pltype.AdminMediationGranted, func() didcomm.Message { return &MediationMsg{} })
	aries.Creator.Add(pltype.AdminMediationDeny, func() didcomm.Message { return &Deny{} })
	aries.Creator.Add(pltype.AdminMediationDenied, func() didcomm.Message { return &MediationMsg{} })
	aries.Creator.Add(pltype.AdminKeylistsGetList, func() didcomm.Message { return &KeylistsGetList{} })
	aries.Creator.Add(pltype.AdminKeylists, func() didcomm.Message { return &Keylists{} })
}

// Mediation states
const (
	StateRequest = "request"
	StateGranted = "granted"
	StateDenied  = "denied"
)

// Mediation roles
const (
	RoleServer = "server"
	RoleClient = "client"
)

// Mediation is a mediation record. The routing family uses it too.
type Mediation struct {
	MediationID    string   `json:"mediation_id"`
	ConnectionID   string   `json:"connection_id"`
	State          string   `json:"state"`
	Role           string   `json:"role"`
	MediatorTerms  []string `json:"mediator_terms,omitempty"`
	RecipientTerms []string `json:"recipient_terms,omitempty"`
	RoutingKeys    []string `json:"routing_keys,omitempty"`
	Endpoint       string   `json:"endpoint,omitempty"`
}

// Filter selects mediation records. Empty fields match all.
type Filter struct {
	ConnectionID string `json:"connection_id,omitempty"`
	State        string `json:"state,omitempty" validate:"omitempty,oneof=request granted denied"`
}

func (f Filter) Match(m Mediation) bool {
	return (f.ConnectionID == "" || f.ConnectionID == m.ConnectionID) &&
		(f.State == "" || f.State == m.State)
}

// RouteKey is a recipient key the mediator routes for a connection.
type RouteKey struct {
	ConnectionID string `json:"connection_id"`
	RecipientKey string `json:"recipient_key"`
}

type RequestsGetList struct {
	didcomm.Header
	decorator.WithPaginate
	Filter
}

func (m *RequestsGetList) Validate() error { return common.Validate(m) }

type Requests struct {
	didcomm.Header
	decorator.WithPage
	Requests []Mediation `json:"requests"`
}

type Grant struct {
	didcomm.Header
	MediationID string `json:"mediation_id" validate:"required"`
}

func (m *Grant) Validate() error { return common.Validate(m) }

type Deny struct {
	didcomm.Header
	MediationID    string   `json:"mediation_id" validate:"required"`
	MediatorTerms  []string `json:"mediator_terms,omitempty"`
	RecipientTerms []string `json:"recipient_terms,omitempty"`
}

func (m *Deny) Validate() error { return common.Validate(m) }

// MediationMsg is the reply for the requests returning a mediation record.
type MediationMsg struct {
	didcomm.Header
	Mediation
}

func NewMediationMsg(t string, m Mediation) *MediationMsg {
	return &MediationMsg{Header: didcomm.Header{Type: t}, Mediation: m}
}

type KeylistsGetList struct {
	didcomm.Header
	decorator.WithPaginate
	ConnectionID string `json:"connection_id,omitempty"`
}

func (m *KeylistsGetList) Validate() error { return common.Validate(m) }

type Keylists struct {
	didcomm.Header
	decorator.WithPage
	Keylists []RouteKey `json:"keylists"`
}
