/*
Package common has the messages shared by all the toolbox protocol families.
*/
package common

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
)

// Problem report codes sent by the toolbox
const (
	CodeAdminOnly      = "admin-only"
	CodeNotSupported   = "not-supported"
	CodeInvalidRequest = "invalid-request"
	CodeNotFound       = "not-found"
	CodeRequestFailed  = "request-failed"
)

// ProblemReport problem report definition
type ProblemReport struct {
	didcomm.Header
	Description    Code   `json:"description"`
	ExplainLongTxt string `json:"explain-ltxt,omitempty"` // ACApy
}

// Code represents a problem report code
type Code struct {
	Code string `json:"code"`
	En   string `json:"en,omitempty"`
}

func init() {
	aries.Creator.Add(pltype.NotificationProblemReport, NewProblemReportMsg)
	aries.Creator.Add(pltype.DIDOrgNotificationProblemReport, NewProblemReportMsg)
}

func NewProblemReportMsg() didcomm.Message {
	return &ProblemReport{}
}

// NewProblemReport returns a problem report with the code and the english
// explanation.
func NewProblemReport(code, explain string) *ProblemReport {
	return &ProblemReport{
		Header:         didcomm.Header{Type: pltype.NotificationProblemReport},
		Description:    Code{Code: code, En: explain},
		ExplainLongTxt: explain,
	}
}
