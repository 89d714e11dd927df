package helper

import (
	"sync/atomic"
	"time"
)

var lastRecordID atomic.Int64

// NewRecordID returns a millisecond-clock identifier that is strictly greater
// than any id previously issued by this process. Keeps the original
// timestamp-derived shape while closing its collision window under rapid
// submissions.
func NewRecordID() int64 {
	for {
		last := lastRecordID.Load()
		id := time.Now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		if lastRecordID.CompareAndSwap(last, id) {
			return id
		}
	}
}
