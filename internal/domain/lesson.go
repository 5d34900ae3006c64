package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	imageURLKey = "imageUrl"
	metaKey     = "_meta"
)

// Meta describes where a served lesson came from.
type Meta struct {
	Cached       bool   `json:"cached"`
	Fallback     bool   `json:"fallback,omitempty"`
	Timestamp    int64  `json:"timestamp"`
	Model        string `json:"model,omitempty"`
	ResponseTime int64  `json:"responseTime"`
}

// Lesson is a metaphor result as served to clients: the source JSON object
// with imageUrl and _meta overlaid on top. Fields of the source that
// MetaphorResult does not model are carried through untouched. Members keep
// their source order and their values keep their source bytes.
type Lesson struct {
	// Result is the typed view of the source document.
	Result MetaphorResult

	// Meta is written under the _meta key.
	Meta Meta

	// keys holds the source member names in document order.
	keys   []string
	fields map[string]json.RawMessage
}

// NewLesson decodes raw into a Lesson. raw must be a JSON object.
func NewLesson(raw []byte) (*Lesson, error) {
	keys, fields, err := splitObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLesson, err)
	}

	var result MetaphorResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLesson, err)
	}

	return &Lesson{Result: result, keys: keys, fields: fields}, nil
}

// splitObject returns the members of a JSON object in document order. A
// repeated name keeps its first position and its last value.
func splitObject(raw []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, errors.New("document is not an object")
	}

	var keys []string
	fields := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		if _, seen := fields[key]; !seen {
			keys = append(keys, key)
		}
		fields[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, errors.New("trailing data after document")
	}
	return keys, fields, nil
}

// SetImageURL records the image reference served with the lesson. A source
// imageUrl is replaced in place; otherwise the member is appended.
func (l *Lesson) SetImageURL(url string) {
	l.Result.ImageURL = url
	l.setField(imageURLKey, encodeString(url))
}

func (l *Lesson) setField(key string, value json.RawMessage) {
	if l.fields == nil {
		l.fields = make(map[string]json.RawMessage)
	}
	if _, ok := l.fields[key]; !ok {
		l.keys = append(l.keys, key)
	}
	l.fields[key] = value
}

// Field returns the raw JSON of a top-level source field.
func (l *Lesson) Field(name string) (json.RawMessage, bool) {
	v, ok := l.fields[name]
	return v, ok
}

// MarshalJSON renders the source members in order followed by _meta. A
// source _meta member is replaced.
func (l Lesson) MarshalJSON() ([]byte, error) {
	meta, err := json.Marshal(l.Meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lesson metadata: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, k := range l.keys {
		if k == metaKey {
			continue
		}
		buf.Write(encodeString(k))
		buf.WriteByte(':')
		buf.Write(l.fields[k])
		buf.WriteByte(',')
	}
	buf.Write(encodeString(metaKey))
	buf.WriteByte(':')
	buf.Write(meta)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeString quotes s as a JSON string without HTML escaping.
func encodeString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
