package plugins

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// EnvLogLevel is read when the log level isn't given in the Config.
const EnvLogLevel = "TOOLBOX_LOG_LEVEL"

const DefaultLogLevel = "warning"

var ErrLogLevel = errors.New("invalid log level")

type glogLevel struct {
	v         string // glog -v
	threshold string // glog -stderrthreshold
}

var logLevels = map[string]glogLevel{
	"debug":   {v: "3", threshold: "INFO"},
	"info":    {v: "1", threshold: "INFO"},
	"warning": {v: "0", threshold: "WARNING"},
	"error":   {v: "0", threshold: "ERROR"},
}

var printLevel sync.Once

// SetLogLevel maps the toolbox log level to the glog flags. The level is one
// of debug, info, warning and error, or a glog verbosity number. An empty
// level is read from the environment, and if it's not set there either the
// default warning is used. The normalized level is returned.
func SetLogLevel(level string) (_ string, err error) {
	defer err2.Handle(&err, "set log level")

	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLogLevel
	}

	if l, ok := logLevels[level]; ok {
		try.To(flag.Set("v", l.v))
		try.To(flag.Set("stderrthreshold", l.threshold))
	} else if n, err := strconv.Atoi(level); err == nil && n >= 0 {
		try.To(flag.Set("v", level))
	} else {
		return "", fmt.Errorf("%w: %q", ErrLogLevel, level)
	}

	printLevel.Do(func() {
		fmt.Println("toolbox log level:", level)
	})
	glog.V(1).Infoln("toolbox log level set:", level)
	return level, nil
}
