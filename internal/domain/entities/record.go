package entities

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Record accessors coerce driver values (int64, float64, []byte, string, time.Time)
// into field types. A missing key keeps the current value.

func recordString(r Record, key string, cur string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return cur
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return cast.ToString(v)
}

func recordInt(r Record, key string, cur int) (int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return cur, nil
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return cur, fmt.Errorf("field %s: %w", key, err)
	}
	return n, nil
}

func recordFloat(r Record, key string, cur float64) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return cur, nil
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return cur, fmt.Errorf("field %s: %w", key, err)
	}
	return f, nil
}

func recordTime(r Record, key string, cur time.Time) (time.Time, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return cur, nil
	}
	switch tv := v.(type) {
	case time.Time:
		return tv.UTC(), nil
	case []byte:
		v = string(tv)
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return cur, fmt.Errorf("field %s: %w", key, err)
	}
	return t.UTC(), nil
}
