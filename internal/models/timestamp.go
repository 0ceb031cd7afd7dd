package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimestampKind tags which representation a Timestamp carries.
type TimestampKind int

const (
	TimestampMissing TimestampKind = iota
	TimestampNative
	TimestampEpochSeconds
	TimestampInvalid
)

// Timestamp is an order creation time as the upstream stores deliver it: either a native
// date value or a serialized {seconds} epoch document. Decoding never fails; values that
// cannot be understood are kept as TimestampInvalid so the analytics can apply fallbacks.
type Timestamp struct {
	Kind    TimestampKind
	Native  time.Time
	Seconds int64
}

func NativeTime(t time.Time) Timestamp {
	return Timestamp{Kind: TimestampNative, Native: t}
}

func EpochSeconds(s int64) Timestamp {
	return Timestamp{Kind: TimestampEpochSeconds, Seconds: s}
}

// Time resolves the timestamp. ok is false for missing or invalid values.
func (ts Timestamp) Time() (t time.Time, ok bool) {
	switch ts.Kind {
	case TimestampNative:
		return ts.Native, !ts.Native.IsZero()
	case TimestampEpochSeconds:
		if !epochInRange(ts.Seconds) {
			return time.Time{}, false
		}
		return time.Unix(ts.Seconds, 0), true
	default:
		return time.Time{}, false
	}
}

type epochDoc struct {
	Seconds *json.Number `json:"seconds"`
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	switch ts.Kind {
	case TimestampNative:
		return json.Marshal(ts.Native.Format(time.RFC3339Nano))
	case TimestampEpochSeconds:
		return []byte(`{"seconds":` + strconv.FormatInt(ts.Seconds, 10) + `}`), nil
	default:
		return []byte("null"), nil
	}
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*ts = Timestamp{}

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			ts.Kind = TimestampInvalid
			return nil
		}
		*ts = parseTimeString(s)
	case data[0] == '{':
		var doc epochDoc
		if err := json.Unmarshal(data, &doc); err != nil || doc.Seconds == nil {
			ts.Kind = TimestampInvalid
			return nil
		}
		*ts = epochFromNumber(doc.Seconds.String())
	default:
		*ts = epochFromNumber(string(data))
	}
	return nil
}

// ParseTimestamp reads a timestamp from flat text such as a CSV cell. Blank text is
// missing, a bare number is epoch seconds and anything else must be a date.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	if ts := epochFromNumber(s); ts.Kind == TimestampEpochSeconds {
		return ts
	}
	return parseTimeString(s)
}

func parseTimeString(s string) Timestamp {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NativeTime(t)
		}
	}
	return Timestamp{Kind: TimestampInvalid}
}

// Epoch seconds outside years 1 through 9999 are treated as malformed.
const (
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

func epochInRange(n int64) bool {
	return n >= minEpochSeconds && n <= maxEpochSeconds
}

func epochFromInt(n int64) Timestamp {
	if !epochInRange(n) {
		return Timestamp{Kind: TimestampInvalid}
	}
	return EpochSeconds(n)
}

func epochFromFloat(f float64) Timestamp {
	if math.IsNaN(f) || f < minEpochSeconds || f > maxEpochSeconds {
		return Timestamp{Kind: TimestampInvalid}
	}
	return EpochSeconds(int64(f))
}

func epochFromNumber(s string) Timestamp {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return epochFromInt(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return epochFromFloat(f)
	}
	return Timestamp{Kind: TimestampInvalid}
}

func (ts Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch ts.Kind {
	case TimestampNative:
		return bson.MarshalValue(primitive.NewDateTimeFromTime(ts.Native))
	case TimestampEpochSeconds:
		return bson.MarshalValue(bson.D{{Key: "seconds", Value: ts.Seconds}})
	default:
		return bson.TypeNull, nil, nil
	}
}

func (ts *Timestamp) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*ts = Timestamp{}
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		return nil
	case bson.TypeDateTime:
		ts.Kind = TimestampNative
		ts.Native = raw.Time()
	case bson.TypeTimestamp:
		sec, _ := raw.Timestamp()
		*ts = epochFromInt(int64(sec))
	case bson.TypeString:
		*ts = parseTimeString(raw.StringValue())
	case bson.TypeEmbeddedDocument:
		doc := raw.Document()
		sec, err := doc.LookupErr("seconds")
		if err != nil {
			ts.Kind = TimestampInvalid
			return nil
		}
		if f, ok := sec.DoubleOK(); ok {
			*ts = epochFromFloat(f)
		} else if n, ok := sec.AsInt64OK(); ok {
			*ts = epochFromInt(n)
		} else {
			ts.Kind = TimestampInvalid
		}
	case bson.TypeInt32, bson.TypeInt64, bson.TypeDouble:
		if f, ok := raw.DoubleOK(); ok {
			*ts = epochFromFloat(f)
		} else if n, ok := raw.AsInt64OK(); ok {
			*ts = epochFromInt(n)
		} else {
			ts.Kind = TimestampInvalid
		}
	default:
		ts.Kind = TimestampInvalid
	}
	return nil
}
