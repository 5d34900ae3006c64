package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sync"
)

// RecordBuffer collects JSON log output so tests can inspect decoded records.
// It is safe for concurrent writers.
type RecordBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *RecordBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Records decodes every record written so far, in write order.
func (b *RecordBuffer) Records() ([]map[string]interface{}, error) {
	b.mu.Lock()
	data := append([]byte(nil), b.buf.Bytes()...)
	b.mu.Unlock()

	var records []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var rec map[string]interface{}
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
