package models

import (
	"encoding/json"
	"fmt"
)

// StatKind discriminates the value held by a StatValue.
type StatKind int

const (
	StatKindInt StatKind = iota
	StatKindString
	StatKindIntList
)

// StatValue is a tagged variant for the loosely typed stat fields in the
// persisted store: an integer counter, a free-form string, or a list of
// integers. Accumulation only applies to the integer kind; the other kinds
// are overwrite-only.
type StatValue struct {
	Kind StatKind
	Int  int64
	Str  string
	List []int64
}

// IntStat builds an integer stat value.
func IntStat(v int64) StatValue { return StatValue{Kind: StatKindInt, Int: v} }

// StringStat builds a string stat value.
func StringStat(s string) StatValue { return StatValue{Kind: StatKindString, Str: s} }

// IntListStat builds an integer-list stat value.
func IntListStat(vs []int64) StatValue {
	return StatValue{Kind: StatKindIntList, List: append([]int64(nil), vs...)}
}

func (v StatValue) clone() StatValue {
	if v.Kind == StatKindIntList && v.List != nil {
		v.List = append([]int64(nil), v.List...)
	}
	return v
}

// MarshalJSON encodes the variant as its bare JSON value so the persisted
// layout stays a plain number, string, or array.
func (v StatValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case StatKindInt:
		return json.Marshal(v.Int)
	case StatKindString:
		return json.Marshal(v.Str)
	case StatKindIntList:
		if v.List == nil {
			return json.Marshal([]int64{})
		}
		return json.Marshal(v.List)
	default:
		return nil, fmt.Errorf("unknown stat kind %d", v.Kind)
	}
}

// UnmarshalJSON decodes a bare number, string, or integer array. Fractional
// numbers are truncated toward zero to keep the counter semantics.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty stat value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringStat(s)
		return nil
	case '[':
		var list []int64
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*v = StatValue{Kind: StatKindIntList, List: list}
		return nil
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("unsupported stat value %s: %w", data, err)
		}
		*v = IntStat(int64(f))
		return nil
	}
}
