package mtl

import (
	"fmt"
	"os"
	"strings"
)

// Metadata is the parsed form of one MTL file: records indexed by group name.
// It is built by Parse and read-only afterwards; a re-parse fully replaces the
// previous contents. A single Metadata is owned by one caller at a time.
type Metadata struct {
	path    string
	records map[string]*Record
	order   []string
}

// NewMetadata creates an empty store for the MTL file at path. Nothing is
// read until Parse is called.
func NewMetadata(path string) *Metadata {
	return &Metadata{path: path}
}

// Path returns the configured metadata file path
func (m *Metadata) Path() string {
	return m.path
}

// Parse reads and parses the configured file, replacing all existing records.
// If the same group name occurs twice in the file, the later occurrence wins.
func (m *Metadata) Parse() error {
	f, err := os.Open(m.path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return err
	}

	m.records = make(map[string]*Record, len(records))
	m.order = m.order[:0]
	for _, record := range records {
		key := strings.ToUpper(record.Name())
		if _, seen := m.records[key]; !seen {
			m.order = append(m.order, key)
		}
		m.records[key] = record
	}

	return nil
}

// Get returns the record for a group, or nil if the group is absent. Group
// lookup is case-insensitive and never fails.
func (m *Metadata) Get(group string) *Record {
	return m.records[strings.ToUpper(group)]
}

// Value returns the typed value of one field, case-insensitive in both group
// and key. The second return is false if either is absent.
func (m *Metadata) Value(group, key string) (interface{}, bool) {
	record := m.Get(group)
	if record == nil {
		return nil, false
	}
	return record.Value(key)
}

// String recovers a field value, assuming it is a string
func (m *Metadata) String(group, key string) (string, error) {
	val, ok := m.Value(group, key)
	if !ok {
		return "", fmt.Errorf("Metadata field does not exist: %s/%s", group, key)
	}
	if str, ok := val.(string); ok {
		return str, nil
	}
	return "", fmt.Errorf("Could not convert value to string: key=%s, value=%v", key, val)
}

// Int recovers a field value, assuming it is an int
func (m *Metadata) Int(group, key string) (int, error) {
	val, ok := m.Value(group, key)
	if !ok {
		return 0, fmt.Errorf("Metadata field does not exist: %s/%s", group, key)
	}
	if i, ok := val.(int); ok {
		return i, nil
	}
	return 0, fmt.Errorf("Could not convert value to int: key=%s, value=%v", key, val)
}

// Float recovers a field value, assuming it is a float; int fields are
// widened since the caster never sees "10" as 10.0
func (m *Metadata) Float(group, key string) (float64, error) {
	val, ok := m.Value(group, key)
	if !ok {
		return 0, fmt.Errorf("Metadata field does not exist: %s/%s", group, key)
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("Could not convert value to float: key=%s, value=%v", key, val)
}

// IterGroup returns the fields of one group in written order, the GROUP field
// excluded. Iterating a missing group is a GroupError; a caller asking for a
// group that is not there is a bug worth surfacing early.
func (m *Metadata) IterGroup(group string) ([]Field, error) {
	record := m.Get(group)
	if record == nil {
		return nil, &GroupError{Group: group}
	}

	fields := make([]Field, 0, record.Len()-1)
	for _, field := range record.Fields() {
		if strings.EqualFold(field.Key, "GROUP") {
			continue
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Groups returns all group names in parse order
func (m *Metadata) Groups() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
