/*
Package store is a bbolt based store for the basic messages the toolbox sends
and receives. Records are kept per connection and the keys are ordered so that
a cursor over a connection returns the newest message first:

	conn_id | 0x00 | inverted sent time, big endian | message id

A second bucket indexes all the records by time for the cursor over every
connection. Its values are the record keys:

	inverted sent time, big endian | conn_id | 0x00 | message id

The cursor is a lazy forward-only source for pagination. It holds a read
transaction until it's exhausted or closed.
*/
package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/findy-network/findy-agent-toolbox/std/decorator"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/assert"
	"github.com/lainio/err2/try"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrNotFound = errors.New("basic message not found")
	ErrClosed   = errors.New("store is closed")
)

var (
	bucketBasicMessage = []byte("basicmessage")
	bucketSentTime     = []byte("basicmessage-time")
)

const (
	StateSent     = "sent"
	StateReceived = "received"

	separator = 0x00
	timeLen   = 8
)

// Record is a stored basic message.
type Record struct {
	ConnID   string
	MsgID    string
	Content  string
	SentTime time.Time
	State    string
}

func NewRecord(d []byte) *Record {
	r := &Record{}
	dto.FromGOB(d, r)
	return r
}

func (r *Record) Data() []byte {
	return dto.ToGOB(r)
}

func (r *Record) Key() []byte {
	return key(r.ConnID, r.SentTime, r.MsgID)
}

func (r *Record) timeKey() []byte {
	return timeKey(r.ConnID, r.SentTime, r.MsgID)
}

func timeKey(connID string, sent time.Time, msgID string) []byte {
	k := make([]byte, 0, timeLen+len(connID)+1+len(msgID))
	k = binary.BigEndian.AppendUint64(k, ^uint64(sent.UnixNano()))
	k = append(k, connID...)
	k = append(k, separator)
	return append(k, msgID...)
}

func prefix(connID string) []byte {
	if connID == "" {
		return nil
	}
	p := make([]byte, 0, len(connID)+1)
	p = append(p, connID...)
	return append(p, separator)
}

func key(connID string, sent time.Time, msgID string) []byte {
	k := prefix(connID)
	k = binary.BigEndian.AppendUint64(k, ^uint64(sent.UnixNano()))
	return append(k, msgID...)
}

// keyParts parses the sent time and message id from the key.
func keyParts(k []byte) (sent time.Time, msgID string, ok bool) {
	i := bytes.IndexByte(k, separator)
	if i < 0 || len(k) < i+1+timeLen {
		return sent, "", false
	}
	ts := binary.BigEndian.Uint64(k[i+1 : i+1+timeLen])
	return time.Unix(0, int64(^ts)), string(k[i+1+timeLen:]), true
}

type Store struct {
	mu sync.RWMutex
	db *bolt.DB
}

// Open opens the bolt file, creating it if it doesn't exist.
func Open(filename string) (s *Store, err error) {
	defer err2.Handle(&err, "open store %s", filename)

	db := try.To1(bolt.Open(filename, 0600, &bolt.Options{Timeout: 1 * time.Second}))
	err = db.Update(func(tx *bolt.Tx) (err error) {
		defer err2.Handle(&err)

		b := try.To1(tx.CreateBucketIfNotExists(bucketBasicMessage))
		idx := try.To1(tx.CreateBucketIfNotExists(bucketSentTime))
		if k, _ := idx.Cursor().First(); k != nil {
			return nil
		}
		return reindex(b, idx)
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	glog.V(1).Infoln("store opened:", filename)
	return &Store{db: db}, nil
}

// reindex builds the time index of a file written without it.
func reindex(b, idx *bolt.Bucket) error {
	return b.ForEach(func(k, _ []byte) error {
		sent, msgID, ok := keyParts(k)
		if !ok {
			return nil
		}
		connID := string(k[:bytes.IndexByte(k, separator)])
		return idx.Put(timeKey(connID, sent, msgID), bytes.Clone(k))
	})
}

// Close closes the bolt file. It waits for the running operations and the open
// cursors.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	glog.V(1).Infoln("closing store:", s.db.Path())
	err := s.db.Close()
	s.db = nil
	return err
}

// rlock read locks the open store. The returned function unlocks it.
func (s *Store) rlock() (unlock func(), err error) {
	if s == nil {
		return func() {}, ErrClosed
	}
	s.mu.RLock()
	if s.db == nil {
		s.mu.RUnlock()
		return func() {}, ErrClosed
	}
	return s.mu.RUnlock, nil
}

// Add stores the record. Adding a record with the same connection, sent time
// and message id replaces the old one.
func (s *Store) Add(r *Record) (err error) {
	defer err2.Handle(&err, "add basic message")

	unlock := try.To1(s.rlock())
	defer unlock()
	assert.NotEmpty(r.ConnID)
	assert.NotEmpty(r.MsgID)
	assert.That(!strings.ContainsRune(r.ConnID, separator), "connection id has separator")

	return s.db.Update(func(tx *bolt.Tx) error {
		k := r.Key()
		if err := tx.Bucket(bucketSentTime).Put(r.timeKey(), k); err != nil {
			return err
		}
		return tx.Bucket(bucketBasicMessage).Put(k, r.Data())
	})
}

// Delete removes the messages of the connection. If no msgIDs are given all
// the messages of the connection are removed. It returns ErrNotFound if none
// of the given messages exists.
func (s *Store) Delete(connID string, msgIDs ...string) (n int, err error) {
	defer err2.Handle(&err, "delete basic messages")

	unlock := try.To1(s.rlock())
	defer unlock()
	assert.NotEmpty(connID)

	ids := make(map[string]bool, len(msgIDs))
	for _, id := range msgIDs {
		ids[id] = true
	}
	p := prefix(connID)
	try.To(s.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketBasicMessage).Cursor()
		var keys [][]byte
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			if _, id, _ := keyParts(k); len(ids) == 0 || ids[id] {
				keys = append(keys, bytes.Clone(k))
			}
		}
		n = len(keys)
		return deleteKeys(tx, keys)
	}))
	if n == 0 && len(msgIDs) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(msgIDs, ","))
	}
	glog.V(2).Infof("deleted %d messages of %s", n, connID)
	return n, nil
}

// Prune removes all the messages sent before the time.
func (s *Store) Prune(before time.Time) (n int, err error) {
	defer err2.Handle(&err, "prune basic messages")

	unlock := try.To1(s.rlock())
	defer unlock()
	try.To(s.db.Update(func(tx *bolt.Tx) error {
		var keys [][]byte
		err := tx.Bucket(bucketBasicMessage).ForEach(func(k, _ []byte) error {
			if sent, _, ok := keyParts(k); ok && sent.Before(before) {
				keys = append(keys, bytes.Clone(k))
			}
			return nil
		})
		if err != nil {
			return err
		}
		n = len(keys)
		return deleteKeys(tx, keys)
	}))
	if n > 0 {
		glog.V(1).Infof("pruned %d basic messages sent before %v", n, before)
	}
	return n, nil
}

// deleteKeys deletes the records and their time index entries.
func deleteKeys(tx *bolt.Tx, keys [][]byte) error {
	b, idx := tx.Bucket(bucketBasicMessage), tx.Bucket(bucketSentTime)
	for _, k := range keys {
		sent, msgID, _ := keyParts(k)
		connID := string(k[:bytes.IndexByte(k, separator)])
		if err := idx.Delete(timeKey(connID, sent, msgID)); err != nil {
			return err
		}
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// Cursor returns a lazy iterator over the messages of the connection, newest
// first. An empty connID iterates all the messages, newest first over all the
// connections. The caller must Close the cursor if it doesn't read it to the
// end.
func (s *Store) Cursor(connID string) (c *Cursor, err error) {
	defer err2.Handle(&err, "basic message cursor")

	unlock := try.To1(s.rlock())
	defer unlock()
	tx := try.To1(s.db.Begin(false))
	c = &Cursor{tx: tx, records: tx.Bucket(bucketBasicMessage)}
	if connID == "" {
		c.c = tx.Bucket(bucketSentTime).Cursor()
		c.indexed = true
	} else {
		c.c = c.records.Cursor()
		c.prefix = prefix(connID)
	}
	return c, nil
}

// Cursor is a decorator.Iterator over stored records.
type Cursor struct {
	tx      *bolt.Tx
	c       *bolt.Cursor
	records *bolt.Bucket
	prefix  []byte
	indexed bool // c walks the time index
	started bool
}

var _ decorator.Iterator[Record] = (*Cursor)(nil)

func (c *Cursor) Next() (r Record, ok bool) {
	if c.tx == nil {
		return r, false
	}
	var k, v []byte
	if c.started {
		k, v = c.c.Next()
	} else {
		k, v = c.c.Seek(c.prefix)
		c.started = true
	}
	if k == nil || !bytes.HasPrefix(k, c.prefix) {
		c.Close()
		return r, false
	}
	if c.indexed {
		if v = c.records.Get(v); v == nil {
			glog.Warningf("time index entry without a record: %x", k)
			return c.Next()
		}
	}
	// values are valid only during the transaction, FromGOB copies them
	return *NewRecord(v), true
}

// Close ends the read transaction. It's safe to call it many times.
func (c *Cursor) Close() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx = nil
	return err
}
