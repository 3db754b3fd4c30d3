package basicmessage

import (
	"fmt"
	"sync"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/store"
	"github.com/findy-network/findy-agent-toolbox/std/basicmessage"
)

// repository is the basic message store the handlers use. The plugin setup
// opens the store and sets it with SetStore.
var repository struct {
	sync.RWMutex
	s *store.Store
}

// SetStore sets the store for the basic message records. A nil store
// disables the admin-basicmessage family.
func SetStore(s *store.Store) {
	repository.Lock()
	defer repository.Unlock()
	repository.s = s
}

func records() (*store.Store, error) {
	repository.RLock()
	defer repository.RUnlock()
	if repository.s == nil {
		return nil, fmt.Errorf("%w: basic message store isn't open", comm.ErrNotSupported)
	}
	return repository.s, nil
}

func messageInfo(r store.Record) basicmessage.MessageInfo {
	return basicmessage.MessageInfo{
		MessageID:    r.MsgID,
		ConnectionID: r.ConnID,
		Content:      r.Content,
		State:        r.State,
		SentTime:     basicmessage.AriesTime{Time: r.SentTime},
	}
}
