// Package prottest has the helpers the admin protocol tests share.
package prottest

import (
	"context"
	"fmt"
	"testing"

	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

// ConnID is the connection the test requests come from.
const ConnID = "admin-conn"

// RequestID is the @id of the messages built by Request.
const RequestID = "req-1"

// Request builds a request message of the type t. The body is a list of JSON
// members without the braces.
func Request(t, body string) string {
	if body != "" {
		body = ", " + body
	}
	return fmt.Sprintf(`{"@type": "%s", "@id": "%s"%s}`, t, RequestID, body)
}

// Capture returns a Send function which stores the sent message to reply.
func Capture(reply *didcomm.Message) func(context.Context, string, didcomm.Message) error {
	return func(_ context.Context, _ string, m didcomm.Message) error {
		*reply = m
		return nil
	}
}

// Dispatch decodes data and processes it as received from ConnID.
func Dispatch(t *testing.T, r comm.Receiver, data string) error {
	t.Helper()
	msg, err := aries.NewFromData([]byte(data))
	require.NoError(t, err)
	return comm.Proc.Process(context.Background(), comm.Packet{
		Message:  msg,
		ConnID:   ConnID,
		Receiver: r,
	})
}

// RequireReply checks that the reply was sent in the thread of the request.
func RequireReply(t *testing.T, reply didcomm.Message) {
	t.Helper()
	require.NotNil(t, reply)
	require.NotNil(t, reply.Hdr().Thread)
	require.Equal(t, RequestID, reply.Hdr().Thread.ID)
	require.NotEmpty(t, reply.Hdr().ID)
}

// ProblemCode returns the code of the problem report m, or an empty string
// if m isn't one.
func ProblemCode(m didcomm.Message) string {
	pr, ok := m.(*common.ProblemReport)
	if !ok {
		return ""
	}
	return pr.Description.Code
}

// Verkey returns a valid verkey which differs by i.
func Verkey(i byte) string {
	key := make([]byte, 32)
	key[0] = i
	return base58.Encode(key)
}

func IntPtr(i int) *int {
	return &i
}
