package plugins

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/store"
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/findy-network/findy-agent-toolbox/protocol/basicmessage"
	"github.com/go-co-op/gocron"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"

	// the protocol families register themselves to the processor
	_ "github.com/findy-network/findy-agent-toolbox/protocol/connections"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/creddef"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/dids"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/holder"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/invitations"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/issuer"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/mediator"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/notification"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/routing"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/schemas"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/staticconn"
	_ "github.com/findy-network/findy-agent-toolbox/protocol/taa"
)

// Config is the toolbox configuration. Zero values select the defaults.
type Config struct {
	StoreFilename    string        // bolt file of the basic messages
	MessageRetention time.Duration // 0 keeps the basic messages forever
	PruneInterval    time.Duration // how often the retention job runs
	LogLevel         string        // debug, info, warning, error or glog -v
	NotifyAdmins     bool          // push received basic messages to admins
}

// Toolbox is the set up toolbox. It owns the basic message store and the
// retention job.
type Toolbox struct {
	lk    sync.Mutex
	store *store.Store
	cron  *gocron.Scheduler
}

// Setup sets the log level and the settings, opens the basic message store
// and starts the retention job if the retention is set.
func Setup(cfg Config) (tb *Toolbox, err error) {
	defer err2.Handle(&err, "toolbox setup")

	level := try.To1(SetLogLevel(cfg.LogLevel))
	utils.Settings.SetLogLevel(level)
	utils.Settings.SetStoreFilename(cfg.StoreFilename)
	utils.Settings.SetMessageRetention(cfg.MessageRetention)
	utils.Settings.SetPruneInterval(cfg.PruneInterval)
	utils.Settings.SetNotifyAdmins(cfg.NotifyAdmins)
	utils.Settings.WriteConfigToLog()

	tb = &Toolbox{store: try.To1(store.Open(utils.Settings.StoreFilename()))}
	defer err2.Handle(&err, func(err error) error {
		tb.Close()
		tb = nil
		return err
	})
	basicmessage.SetStore(tb.store)

	if retention := utils.Settings.MessageRetention(); retention > 0 {
		tb.cron = try.To1(startRetention(tb.store, retention,
			utils.Settings.PruneInterval()))
	}

	loaded, missing := LoadedModules()
	glog.Infoln("toolbox modules loaded:", strings.Join(loaded, ", "))
	if len(missing) > 0 {
		glog.Warningln("toolbox modules without handlers:", strings.Join(missing, ", "))
	}
	return tb, nil
}

// Handle decodes the toolbox message and delivers it to the protocol
// family's handler. The receiver is the host agent which got the message
// from the connection.
func (tb *Toolbox) Handle(ctx context.Context, r comm.Receiver, connID string, data []byte) (err error) {
	defer err2.Handle(&err, "toolbox message from %s", connID)

	msg := try.To1(aries.NewFromData(data))
	return comm.Proc.Process(ctx, comm.Packet{
		Message:  msg,
		ConnID:   connID,
		Receiver: r,
	})
}

// MessageTypes returns all the message types the toolbox knows, sorted.
func (tb *Toolbox) MessageTypes() []string {
	return aries.Creator.Types()
}

// Close stops the retention job and closes the basic message store. It's
// safe to call it many times.
func (tb *Toolbox) Close() {
	tb.lk.Lock()
	defer tb.lk.Unlock()

	if tb.cron != nil {
		tb.cron.Stop()
		tb.cron = nil
	}
	if tb.store != nil {
		basicmessage.SetStore(nil)
		if err := tb.store.Close(); err != nil {
			glog.Warningln("toolbox close:", err)
		}
		tb.store = nil
	}
}
