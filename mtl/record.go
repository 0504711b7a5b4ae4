package mtl

import "strings"

// Field is a single key/value pair of a metadata record. Keys keep the casing
// they were written with; values are int, float64 or string.
type Field struct {
	Key   string
	Value interface{}
}

// Record is one parsed metadata group: an ordered key/value mapping carrying
// the group's own name under the GROUP key. Records are read-only once built.
type Record struct {
	name   string
	fields []Field
	index  map[string]int
}

func newRecord() *Record {
	return &Record{index: map[string]int{}}
}

func (r *Record) append(key string, value interface{}) {
	upper := strings.ToUpper(key)
	if i, ok := r.index[upper]; ok {
		r.fields[i] = Field{Key: key, Value: value}
		return
	}
	r.index[upper] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Name returns the group name as written in the GROUP field
func (r *Record) Name() string {
	return r.name
}

// Len returns the number of fields, the GROUP field included
func (r *Record) Len() int {
	return len(r.fields)
}

// Value looks up a field value by key, case-insensitively
func (r *Record) Value(key string) (interface{}, bool) {
	i, ok := r.index[strings.ToUpper(key)]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Fields returns a copy of all fields in written order
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}
