package session

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"

	"github.com/cedarbrook-wellness/content-service/internal/upload"
)

// DefaultTTL evicts sessions abandoned mid-upload. An evicted session
// simply forces the client to restart from chunk zero.
const DefaultTTL = 60 * time.Minute

// Session tracks partial chunk arrival for one logical upload, keyed by
// (filename, groupKey). Chunks land in a pre-sized slice indexed by
// chunk number, so out-of-order arrival needs no sorting.
type Session struct {
	Filename    string
	GroupKey    string
	ContentType string
	TotalChunks int

	chunks [][]byte
	seen   []bool
	count  int
	bytes  int64
}

// PutResult reports the session state after one chunk is stored.
type PutResult struct {
	Complete bool
	Received int
	Total    int
	// Payload is the reassembled upload, set only when Complete.
	Payload []byte
}

// Store holds in-flight chunk sessions. Entries expire after the TTL so
// abandoned uploads do not accumulate. The mutex serializes the
// read-modify-write on a session; chunks for the same session arriving
// concurrently would otherwise race on the received count.
type Store struct {
	mu       sync.Mutex
	maxBytes int64
	sessions *ttlworker.Cache[string, *Session]
}

// NewStore creates a session store. maxBytes caps the bytes a single
// session may buffer across all its chunks; zero means uncapped.
func NewStore(ttl time.Duration, maxBytes int64) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		maxBytes: maxBytes,
		sessions: ttlworker.NewCache[string, *Session](ttl),
	}
}

// Key derives the session identity from the upload's filename and its
// logical group (weekOf for CSV imports, section:key for content).
func Key(filename, groupKey string) string {
	return filename + "::" + groupKey
}

// Put stores one chunk. Index must be in [0, total). A duplicate index
// overwrites the previous payload without incrementing the received
// count, so a resent chunk still completes cleanly. The assembled
// payload is returned, and the session evicted, once every index has
// arrived and the caller has flagged the last chunk.
func (s *Store) Put(filename, groupKey, contentType string, index, total int, isLast bool, payload []byte) (PutResult, error) {
	if total <= 0 {
		return PutResult{}, upload.NewError(upload.CodeMissingRequiredField, "totalChunks must be positive")
	}
	if index < 0 || index >= total {
		return PutResult{}, upload.NewError(upload.CodeMissingRequiredField,
			fmt.Sprintf("chunkIndex %d out of range [0, %d)", index, total))
	}

	key := Key(filename, groupKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessions.Get(key)
	if sess == nil {
		sess = &Session{
			Filename:    filename,
			GroupKey:    groupKey,
			ContentType: contentType,
			TotalChunks: total,
			chunks:      make([][]byte, total),
			seen:        make([]bool, total),
		}
	}

	if sess.TotalChunks != total {
		return PutResult{}, upload.NewError(upload.CodeMissingRequiredField,
			fmt.Sprintf("totalChunks changed mid-session: had %d, got %d", sess.TotalChunks, total))
	}

	// Byte accounting replaces the previous payload on a duplicate, so
	// resends cannot inflate the total.
	newBytes := sess.bytes - int64(len(sess.chunks[index])) + int64(len(payload))
	if s.maxBytes > 0 && newBytes > s.maxBytes {
		return PutResult{}, upload.NewError(upload.CodePayloadTooLarge,
			fmt.Sprintf("session exceeds limit of %d buffered bytes", s.maxBytes))
	}

	if !sess.seen[index] {
		sess.seen[index] = true
		sess.count++
	}
	sess.chunks[index] = payload
	sess.bytes = newBytes

	if sess.count == sess.TotalChunks && isLast {
		s.sessions.Delete(key)
		return PutResult{
			Complete: true,
			Received: sess.count,
			Total:    sess.TotalChunks,
			Payload:  bytes.Join(sess.chunks, nil),
		}, nil
	}

	// Re-set to refresh the TTL on an active session.
	s.sessions.Set(key, sess)

	return PutResult{Received: sess.count, Total: sess.TotalChunks}, nil
}

// Drop discards a session, releasing its buffered chunks. Used when the
// client aborts.
func (s *Store) Drop(filename, groupKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Delete(Key(filename, groupKey))
}
