package paradox

// FieldType is the on-disk Paradox field type tag.
type FieldType byte

// Field type tags as stored in the header's field descriptor area.
const (
	TypeAlpha     FieldType = 0x01
	TypeDate      FieldType = 0x02
	TypeShort     FieldType = 0x03
	TypeLong      FieldType = 0x04
	TypeCurrency  FieldType = 0x05
	TypeNumber    FieldType = 0x06
	TypeLogical   FieldType = 0x09
	TypeMemoBLOb  FieldType = 0x0C
	TypeBinBLOb   FieldType = 0x0D
	TypeFmtMemo   FieldType = 0x0E
	TypeOLE       FieldType = 0x0F
	TypeGraphic   FieldType = 0x10
	TypeTime      FieldType = 0x14
	TypeTimestamp FieldType = 0x15
	TypeAutoInc   FieldType = 0x16
	TypeBCD       FieldType = 0x17
	TypeBytes     FieldType = 0x18
)

// Field describes one column of a Paradox table.
type Field struct {
	// Name is the column name as recorded in the header.
	Name string

	// Type is the on-disk type tag.
	Type FieldType

	// Size is the number of bytes the field occupies in every record.
	Size int
}

// String returns a short mnemonic for the field type, matching the letters
// Paradox itself uses in its table designer.
func (t FieldType) String() string {
	switch t {
	case TypeAlpha:
		return "A"
	case TypeDate:
		return "D"
	case TypeShort:
		return "S"
	case TypeLong:
		return "I"
	case TypeCurrency:
		return "$"
	case TypeNumber:
		return "N"
	case TypeLogical:
		return "L"
	case TypeMemoBLOb:
		return "M"
	case TypeBinBLOb:
		return "B"
	case TypeFmtMemo:
		return "F"
	case TypeOLE:
		return "O"
	case TypeGraphic:
		return "G"
	case TypeTime:
		return "T"
	case TypeTimestamp:
		return "@"
	case TypeAutoInc:
		return "+"
	case TypeBCD:
		return "#"
	case TypeBytes:
		return "Y"
	default:
		return "?"
	}
}
