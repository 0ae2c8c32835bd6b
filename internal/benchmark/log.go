package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Log is the append-only, in-memory history of benchmark records for the
// lifetime of a session.
type Log struct {
	mu      sync.RWMutex
	records []Record
}

func NewLog() *Log {
	return &Log{}
}

// Append stores rec with Index set to one plus the current length and
// returns that index.
func (l *Log) Append(rec Record) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec.Index = len(l.records) + 1
	l.records = append(l.records, rec)
	return rec.Index
}

// All returns a snapshot of the records in insertion order.
func (l *Log) All() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Last returns the most recent record, if any.
func (l *Log) Last() (Record, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// WriteJSON writes a snapshot of the log as an indented JSON array.
func (l *Log) WriteJSON(w io.Writer) error {
	records := l.All()
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
