package utils

import (
	"sync"
	"time"

	"github.com/golang/glog"
)

const (
	DefaultStoreFilename = "toolbox.bolt"
	DefaultPruneInterval = 1 * time.Hour
)

var Settings = &Hub{}

// Hub keeps the process wide toolbox settings. The plugin setup writes them
// and the protocol handlers read them.
type Hub struct {
	l sync.RWMutex

	storeFilename    string        // bolt file of the basic message records
	messageRetention time.Duration // basic messages older than this are pruned, 0 keeps all
	pruneInterval    time.Duration // how often the retention job runs
	logLevel         string        // toolbox log level as it was given
	notifyAdmins     bool          // push new basic messages to admin connections
}

func (h *Hub) StoreFilename() string {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.storeFilename == "" {
		return DefaultStoreFilename
	}
	return h.storeFilename
}

func (h *Hub) SetStoreFilename(filename string) {
	h.l.Lock()
	defer h.l.Unlock()
	h.storeFilename = filename
}

func (h *Hub) MessageRetention() time.Duration {
	h.l.RLock()
	defer h.l.RUnlock()
	return h.messageRetention
}

// SetMessageRetention sets how long basic messages are kept in the store.
// Zero keeps them forever.
func (h *Hub) SetMessageRetention(d time.Duration) {
	h.l.Lock()
	defer h.l.Unlock()
	h.messageRetention = d
}

func (h *Hub) PruneInterval() time.Duration {
	h.l.RLock()
	defer h.l.RUnlock()
	if h.pruneInterval == 0 {
		return DefaultPruneInterval
	}
	return h.pruneInterval
}

func (h *Hub) SetPruneInterval(d time.Duration) {
	h.l.Lock()
	defer h.l.Unlock()
	h.pruneInterval = d
}

func (h *Hub) LogLevel() string {
	h.l.RLock()
	defer h.l.RUnlock()
	return h.logLevel
}

func (h *Hub) SetLogLevel(level string) {
	h.l.Lock()
	defer h.l.Unlock()
	h.logLevel = level
}

func (h *Hub) NotifyAdmins() bool {
	h.l.RLock()
	defer h.l.RUnlock()
	return h.notifyAdmins
}

func (h *Hub) SetNotifyAdmins(yes bool) {
	h.l.Lock()
	defer h.l.Unlock()
	h.notifyAdmins = yes
}

func (h *Hub) WriteConfigToLog() {
	glog.V(1).Infoln("store filename:", h.StoreFilename())
	glog.V(1).Infoln("message retention:", h.MessageRetention())
	glog.V(1).Infoln("prune interval:", h.PruneInterval())
	glog.V(1).Infoln("log level:", h.LogLevel())
	glog.V(1).Infoln("notify admins:", h.NotifyAdmins())
}
