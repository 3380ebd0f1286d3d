package fixture

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// record converts one loosely typed YAML mapping into typed fields. The first
// conversion failure is kept in err and later calls become no-ops.
type record struct {
	file   string
	index  int
	fields map[string]any
	err    error
}

func newRecord(file string, index int, fields map[string]any) *record {
	return &record{file: file, index: index, fields: fields}
}

func (r *record) fail(key string, err error) {
	if err != nil && r.err == nil {
		r.err = errors.Wrapf(ErrInvalidRecord, "%s[%d].%s: %v", r.file, r.index, key, err)
	}
}

func (r *record) value(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.fields[key]
	return v, ok && v != nil
}

func (r *record) String(key string) string {
	v, ok := r.value(key)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v)
	r.fail(key, err)
	return s
}

func (r *record) Float(key string) float64 {
	v, ok := r.value(key)
	if !ok {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	r.fail(key, err)
	return f
}

func (r *record) OptionalFloat(key string) *float64 {
	if _, ok := r.value(key); !ok {
		return nil
	}
	f := r.Float(key)
	return &f
}

func (r *record) Int(key string) int {
	v, ok := r.value(key)
	if !ok {
		return 0
	}
	i, err := cast.ToIntE(v)
	r.fail(key, err)
	return i
}

func (r *record) Bool(key string) bool {
	v, ok := r.value(key)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	r.fail(key, err)
	return b
}

// Time accepts any layout dateparse understands, reading zoneless values as
// UTC. Missing keys give the zero time.
func (r *record) Time(key string) time.Time {
	v, ok := r.value(key)
	if !ok {
		return time.Time{}
	}
	if t, ok := v.(time.Time); ok {
		return t
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		r.fail(key, err)
		return time.Time{}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	r.fail(key, err)
	return t
}

// Instant resolves either "<prefix>at" (absolute) or "<prefix>age" (a Go
// duration before now). An absolute time wins when both are present.
func (r *record) Instant(prefix string, now time.Time) time.Time {
	if _, ok := r.value(prefix + "at"); ok {
		return r.Time(prefix + "at")
	}
	v, ok := r.value(prefix + "age")
	if !ok {
		r.fail(prefix+"at", errors.New("missing timestamp"))
		return time.Time{}
	}
	age, err := cast.ToDurationE(v)
	if err != nil {
		r.fail(prefix+"age", err)
		return time.Time{}
	}
	return now.Add(-age)
}
