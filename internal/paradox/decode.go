package paradox

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"
)

// Paradox stores numeric fields big-endian with the sign bit flipped so
// byte-wise comparison sorts values correctly. An all-zero buffer means null
// for every numeric type.

const msPerDay = 24 * 60 * 60 * 1000

// decodeField turns the raw bytes of one field into a Go value: string for
// Alpha, int16/int32 for Short/Long/AutoInc, float64 for Number/Currency,
// time.Time for Date/Timestamp, time.Duration for Time, bool for Logical.
// Null fields decode to nil. BLOb-backed and BCD fields are not supported
// and decode to nil; their bytes still occupy the record.
func (t *Table) decodeField(f Field, raw []byte) (any, error) {
	switch f.Type {
	case TypeAlpha:
		text, err := t.decodeText(trimZero(raw))
		if err != nil {
			return nil, err
		}
		return strings.TrimRight(text, " "), nil

	case TypeShort:
		if isNull(raw) {
			return nil, nil
		}
		if len(raw) != 2 {
			return nil, fmt.Errorf("short field of size %d", len(raw))
		}
		return int16(binary.BigEndian.Uint16(raw) ^ 0x8000), nil

	case TypeLong, TypeAutoInc:
		if isNull(raw) {
			return nil, nil
		}
		if len(raw) != 4 {
			return nil, fmt.Errorf("long field of size %d", len(raw))
		}
		return int32(binary.BigEndian.Uint32(raw) ^ 0x80000000), nil

	case TypeNumber, TypeCurrency:
		if len(raw) != 8 {
			return nil, fmt.Errorf("number field of size %d", len(raw))
		}
		v := decodeDouble(raw)
		if v == nil {
			return nil, nil
		}
		return *v, nil

	case TypeDate:
		if isNull(raw) {
			return nil, nil
		}
		if len(raw) != 4 {
			return nil, fmt.Errorf("date field of size %d", len(raw))
		}
		days := int32(binary.BigEndian.Uint32(raw) ^ 0x80000000)
		return dateFromDays(int(days)), nil

	case TypeTime:
		if isNull(raw) {
			return nil, nil
		}
		if len(raw) != 4 {
			return nil, fmt.Errorf("time field of size %d", len(raw))
		}
		ms := int32(binary.BigEndian.Uint32(raw) ^ 0x80000000)
		return time.Duration(ms) * time.Millisecond, nil

	case TypeTimestamp:
		if len(raw) != 8 {
			return nil, fmt.Errorf("timestamp field of size %d", len(raw))
		}
		v := decodeDouble(raw)
		if v == nil {
			return nil, nil
		}
		ms := int64(*v)
		days := int(ms / msPerDay)
		rem := time.Duration(ms%msPerDay) * time.Millisecond
		return dateFromDays(days).Add(rem), nil

	case TypeLogical:
		if len(raw) != 1 {
			return nil, fmt.Errorf("logical field of size %d", len(raw))
		}
		if raw[0] == 0 {
			return nil, nil
		}
		return raw[0]^0x80 != 0, nil

	case TypeBytes:
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, nil

	case TypeMemoBLOb, TypeBinBLOb, TypeFmtMemo, TypeOLE, TypeGraphic, TypeBCD:
		// stored in companion .MB files or packed decimal; not needed for
		// catalog reading
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported field type 0x%02x", byte(f.Type))
	}
}

// decodeDouble decodes an 8-byte Paradox floating point value. Positive
// values have the sign bit set; negative values are stored fully inverted;
// all-zero is null.
func decodeDouble(raw []byte) *float64 {
	var buf [8]byte
	copy(buf[:], raw)

	if buf[0]&0x80 != 0 {
		buf[0] &^= 0x80
	} else {
		if isNull(buf[:]) {
			return nil
		}
		for i := range buf {
			buf[i] = ^buf[i]
		}
	}

	v := math.Float64frombits(binary.BigEndian.Uint64(buf[:]))
	return &v
}

// dateFromDays converts a Paradox day count (1 = 1 Jan 0001) to time.Time in
// UTC.
func dateFromDays(days int) time.Time {
	return time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days-1)
}

func isNull(raw []byte) bool {
	for _, b := range raw {
		if b != 0 {
			return false
		}
	}
	return true
}

func trimZero(raw []byte) []byte {
	for i, b := range raw {
		if b == 0 {
			return raw[:i]
		}
	}
	return raw
}
