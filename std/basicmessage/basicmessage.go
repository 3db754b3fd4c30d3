/*
Package basicmessage has the messages of the Aries basic message protocol and
the toolbox's admin-basicmessage family which sends, lists and deletes them.
*/
package basicmessage

import (
	"time"

	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.BasicMessageSend, func() didcomm.Message { return &Basicmessage{} })
	aries.Creator.Add(pltype.DIDOrgBasicMessage, func() didcomm.Message { return &Basicmessage{} })

	aries.Creator.Add(pltype.AdminBasicMessageSend, func() didcomm.Message { return &Send{} })
	aries.Creator.Add(pltype.AdminBasicMessageSent, func() didcomm.Message { return &Sent{} })
	aries.Creator.Add(pltype.AdminBasicMessageGet, func() didcomm.Message { return &Get{} })
	aries.Creator.Add(pltype.AdminBasicMessageList, func() didcomm.Message { return &Messages{} })
	aries.Creator.Add(pltype.AdminBasicMessageDelete, func() didcomm.Message { return &Delete{} })
	aries.Creator.Add(pltype.AdminBasicMessageDeleted, func() didcomm.Message { return &Deleted{} })
	aries.Creator.Add(pltype.AdminBasicMessageNew, func() didcomm.Message { return &New{} })
}

// NewBasicmessage returns an Aries basic message with the content sent now.
func NewBasicmessage(content string) *Basicmessage {
	return &Basicmessage{
		Header:   didcomm.Header{Type: pltype.BasicMessageSend},
		Content:  content,
		SentTime: AriesTime{Time: time.Now().UTC()},
	}
}

// MessageInfo is a basic message as the admin protocol shows it.
type MessageInfo struct {
	MessageID    string    `json:"message_id"`
	ConnectionID string    `json:"connection_id"`
	Content      string    `json:"content"`
	State        string    `json:"state"`
	SentTime     AriesTime `json:"sent_time"`
}

// Send asks the toolbox to send a basic message to the connection.
type Send struct {
	didcomm.Header
	ConnectionID string `json:"connection_id" validate:"required"`
	Content      string `json:"content" validate:"required"`
}

func (m *Send) Validate() error { return common.Validate(m) }

type Sent struct {
	didcomm.Header
	ConnectionID string      `json:"connection_id"`
	Message      MessageInfo `json:"message"`
}

// Get queries the stored messages, newest first. Without a connection id the
// messages of all the connections are returned.
type Get struct {
	didcomm.Header
	decorator.WithPaginate
	ConnectionID string `json:"connection_id,omitempty"`
}

func (m *Get) Validate() error { return common.Validate(m) }

type Messages struct {
	didcomm.Header
	decorator.WithPage
	ConnectionID string        `json:"connection_id,omitempty"`
	Messages     []MessageInfo `json:"messages"`
}

// Delete removes the listed messages of the connection, or all of them when
// MessageIDs is empty.
type Delete struct {
	didcomm.Header
	ConnectionID string   `json:"connection_id" validate:"required"`
	MessageIDs   []string `json:"message_ids,omitempty" validate:"dive,required"`
}

func (m *Delete) Validate() error { return common.Validate(m) }

type Deleted struct {
	didcomm.Header
	ConnectionID string   `json:"connection_id"`
	MessageIDs   []string `json:"message_ids,omitempty"`
	Count        int      `json:"deleted"`
}

// New notifies the admin connections about a received basic message.
type New struct {
	didcomm.Header
	ConnectionID string      `json:"connection_id"`
	Message      MessageInfo `json:"message"`
}
