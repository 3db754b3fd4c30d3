package basicmessage

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// AriesTime is a time which is marshaled in the format other Aries agents
// use for the sent_time field. RFC 3339 is accepted when unmarshaling.
type AriesTime struct {
	time.Time
}

// ISO8601 is the sent_time layout. ACA-Py doesn't accept nanoseconds.
const ISO8601 = "2006-01-02 15:04:05.999999Z"

// ErrTimeRange is returned for years which don't fit to four digits.
var ErrTimeRange = errors.New("sent_time year outside of range [0,9999]")

// Basicmessage is the Aries basic message 1.0.
type Basicmessage struct {
	didcomm.Header
	Content  string    `json:"content"`
	SentTime AriesTime `json:"sent_time"`
}

func parseSentTime(s string) (t time.Time, err error) {
	for _, layout := range []string{ISO8601, time.RFC3339Nano} {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return t, err
}

func (at *AriesTime) UnmarshalJSON(b []byte) (err error) {
	defer err2.Handle(&err, "sent_time")

	at.Time = try.To1(parseSentTime(strings.Trim(string(b), `"`)))
	return nil
}

func (at AriesTime) MarshalJSON() ([]byte, error) {
	if y := at.Year(); y < 0 || y > 9999 {
		return nil, ErrTimeRange
	}
	return strconv.AppendQuote(nil, at.Format(ISO8601)), nil
}

func (at AriesTime) String() string {
	return at.Time.String()
}
