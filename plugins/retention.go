package plugins

import (
	"time"

	"github.com/findy-network/findy-agent-toolbox/agent/store"
	"github.com/go-co-op/gocron"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// startRetention starts a job which removes the basic messages older than
// the retention. The job runs right away and then at every interval.
func startRetention(s *store.Store, retention, interval time.Duration) (_ *gocron.Scheduler, err error) {
	defer err2.Handle(&err, "start message retention")

	cron := gocron.NewScheduler(time.UTC)
	try.To1(cron.Every(interval).Do(prune, s, retention))
	cron.StartAsync()
	glog.V(1).Infof("message retention %v, pruned every %v", retention, interval)
	return cron, nil
}

func prune(s *store.Store, retention time.Duration) int {
	n, err := s.Prune(time.Now().UTC().Add(-retention))
	if err != nil {
		glog.Warningln("message retention:", err)
		return 0
	}
	glog.V(3).Infoln("message retention pruned:", n)
	return n
}
