/*
Package didcomm offers the interfaces and helpers shared by all the didcomm
messages the toolbox handles. Message types are URIs of the form

	<namespace>/<family>/<version>/<name>

where the namespace may contain slashes itself, e.g. the toolbox admin
namespace https://github.com/hyperledger/aries-toolbox/tree/master/docs.

The actual message factoring is done in the aries package.
*/
package didcomm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

// ErrInvalidType is returned when a message type URI cannot be parsed.
var ErrInvalidType = errors.New("invalid message type")

// Header is the common part of every didcomm message. Message structs embed
// it, and encoding/json flattens its fields to the top level of the message.
type Header struct {
	Type   string            `json:"@type,omitempty"`
	ID     string            `json:"@id,omitempty"`
	Thread *decorator.Thread `json:"~thread,omitempty"`
}

// Hdr returns the header itself. Every struct embedding a Header implements
// Message through this method.
func (h *Header) Hdr() *Header {
	return h
}

// ThreadID returns the ID of the conversation the message belongs to.
func (h *Header) ThreadID() string {
	if h.Thread != nil && h.Thread.ID != "" {
		return h.Thread.ID
	}
	return h.ID
}

// Message is the base interface for all protocol messages.
type Message interface {
	Hdr() *Header
}

// Factor creates a new empty message for decoding.
type Factor func() Message

// MsgType is a parsed message type URI.
type MsgType struct {
	Namespace string
	Family    string
	Version   string
	Name      string
}

// ParseType parses a message type URI. The last three path segments are the
// family, version and name, and everything before them is the namespace.
func ParseType(t string) (mt MsgType, err error) {
	parts := strings.Split(t, "/")
	if len(parts) < 4 {
		return mt, fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	n := len(parts)
	mt = MsgType{
		Namespace: strings.Join(parts[:n-3], "/"),
		Family:    parts[n-3],
		Version:   parts[n-2],
		Name:      parts[n-1],
	}
	if mt.Namespace == "" || mt.Family == "" || mt.Version == "" || mt.Name == "" {
		return MsgType{}, fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	return mt, nil
}

// Protocol returns the family/version part of the type, e.g. admin-dids/0.1.
func (mt MsgType) Protocol() string {
	return mt.Family + "/" + mt.Version
}

func (mt MsgType) String() string {
	return mt.Namespace + "/" + mt.Family + "/" + mt.Version + "/" + mt.Name
}

// FieldAtInd returns a field of the message type. Fields are indexed from the
// family: 0 is the namespace, 1 the family, 2 the version and 3 the name. An
// empty string is returned for invalid types.
func FieldAtInd(t string, where int) string {
	mt, err := ParseType(t)
	if err != nil {
		return ""
	}
	switch where {
	case 0:
		return mt.Namespace
	case 1:
		return mt.Family
	case 2:
		return mt.Version
	case 3:
		return mt.Name
	}
	return ""
}
