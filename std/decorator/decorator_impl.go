/*
Package decorator implements the Aries message decorators the toolbox uses:
~thread for message threading, and ~paginate / ~page for paginated admin
queries. The pagination helpers work over two kinds of sources: materialized
slices (Items) and lazy forward-only iterators (Stream).
*/
package decorator

import (
	"github.com/hyperledger/aries-framework-go/pkg/didcomm/protocol/decorator"
)

// Thread is the ~thread decorator. It's the same type aries-framework-go uses
// so messages can be moved between the two without conversion.
type Thread = decorator.Thread

func NewThread(ID, PID string) *Thread {
	realPID := ""
	if ID != PID {
		realPID = PID
	}
	return &Thread{ID: ID, PID: realPID}
}

func CheckThread(thread *Thread, ID string) *Thread {
	if thread == nil {
		return &Thread{ID: ID}
	}
	if thread.ID == "" {
		thread.ID = ID
	}
	return thread
}

// ReplyThread returns a thread for a message replying to a message which had
// the id and the thread. The thread ID of the request wins when it has one.
func ReplyThread(id string, thread *Thread) *Thread {
	if thread != nil && thread.ID != "" {
		return &Thread{ID: thread.ID, PID: thread.PID}
	}
	return &Thread{ID: id}
}
