// SPDX-License-Identifier: MIT

package parallel

import (
	"io"
	"sync"
)

// SyncWriter serializes Write calls to an underlying writer. Wrap a shared
// stderr in one SyncWriter when it is also handed to a logger, so log lines
// and worker output never interleave inside one write.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter wraps w.
func NewSyncWriter(w io.Writer) *SyncWriter { return &SyncWriter{w: w} }

// Write implements io.Writer.
func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.w.Write(p)
}
