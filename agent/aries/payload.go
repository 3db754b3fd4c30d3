/*
Package aries is the factoring package for didcomm messages. Message packages
register a Factor for every message type they own, and NewFromData uses the
registry to decode incoming JSON into the correct Go struct. Messages of
unregistered types are decoded into Generic. We use statically typed JSON
messages, i.e. they are always mapped to the corresponding Go struct.
*/
package aries

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ErrNoType is returned when an incoming message has no @type.
var ErrNoType = errors.New("message has no @type")

// Creator is the message factor registry. Message packages add their types
// to it in init functions.
var Creator = &Factor{factors: make(map[string]didcomm.Factor)}

type Factor struct {
	lk      sync.RWMutex
	factors map[string]didcomm.Factor
}

func (f *Factor) Add(t string, factor didcomm.Factor) {
	f.lk.Lock()
	defer f.lk.Unlock()
	f.factors[t] = factor
}

func (f *Factor) factor(t string) (didcomm.Factor, bool) {
	f.lk.RLock()
	defer f.lk.RUnlock()
	factor, ok := f.factors[t]
	return factor, ok
}

// Types returns all the registered message types in sorted order.
func (f *Factor) Types() []string {
	f.lk.RLock()
	defer f.lk.RUnlock()
	types := make([]string, 0, len(f.factors))
	for t := range f.factors {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// NewMsg creates a new empty message of the type t, or a Generic message if
// the type isn't registered.
func (f *Factor) NewMsg(t string) didcomm.Message {
	if factor, ok := f.factor(t); ok {
		m := factor()
		m.Hdr().Type = t
		return m
	}
	return &Generic{Header: didcomm.Header{Type: t}}
}

// NewFromData decodes a message from JSON into the Go struct registered for
// its @type. If the @type isn't registered a Generic message is returned.
func (f *Factor) NewFromData(data []byte) (m didcomm.Message, err error) {
	defer err2.Handle(&err, "decode message")

	var hdr didcomm.Header
	try.To(json.Unmarshal(data, &hdr))
	if hdr.Type == "" {
		return nil, ErrNoType
	}
	m = f.NewMsg(hdr.Type)
	try.To(json.Unmarshal(data, m))
	checkThread(m.Hdr())
	return m, nil
}

// NewFromData decodes a message with the default Creator.
func NewFromData(data []byte) (didcomm.Message, error) {
	return Creator.NewFromData(data)
}

// JSON encodes a message.
func JSON(m didcomm.Message) []byte {
	return dto.ToJSONBytes(m)
}

func checkThread(h *didcomm.Header) {
	if h.Thread != nil && h.Thread.ID == "" && h.Thread.PID == "" {
		h.Thread = nil
	}
}

// Generic is a message of a type which has no registered Go struct. All the
// fields of the message are kept in Fields, the header included.
type Generic struct {
	didcomm.Header
	Fields map[string]any `json:"-"`
}

func (g *Generic) UnmarshalJSON(data []byte) (err error) {
	defer err2.Handle(&err)

	try.To(json.Unmarshal(data, &g.Header))
	g.Fields = make(map[string]any)
	return json.Unmarshal(data, &g.Fields)
}

func (g *Generic) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(g.Fields)+3)
	for k, v := range g.Fields {
		fields[k] = v
	}
	fields["@type"] = g.Type
	if g.ID != "" {
		fields["@id"] = g.ID
	} else {
		delete(fields, "@id")
	}
	if g.Thread != nil {
		fields["~thread"] = g.Thread
	} else {
		delete(fields, "~thread")
	}
	return json.Marshal(fields)
}
