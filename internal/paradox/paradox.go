package paradox

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Common header field offsets. The header occupies 0x58 bytes; data files of
// version 4.0 and above carry a 0x20-byte extension, so their field
// descriptors start at 0x78.
const (
	offRecordSize    = 0x00 // uint16: bytes per record
	offHeaderSize    = 0x02 // uint16: bytes before the first data block
	offFileType      = 0x04 // byte: 0/2 = .DB data file (indexed / not)
	offMaxTableSize  = 0x05 // byte: data block size in KiB
	offNumRecords    = 0x06 // uint32: records in the table
	offFileBlocks    = 0x0C // uint16: data blocks allocated in the file
	offFirstBlock    = 0x0E // uint16: head of the data block chain (1-based)
	offNumFields     = 0x21 // uint16: columns in the table
	offFileVersionID = 0x39 // byte: 0x05 = 4.0, 0x0C = 7.0

	commonHeaderSize = 0x58
	v4HeaderSize     = 0x20

	// Each data block starts with next/prev block numbers and the offset of
	// the last record stored in the block.
	blockHeaderSize = 6
)

// File type tags at offFileType that denote record-bearing .DB files (as
// opposed to index and BLOb companions).
const (
	fileTypeDBIndexed    = 0x00
	fileTypeDBNotIndexed = 0x02
)

// Record maps column names to decoded values. Null fields are present with a
// nil value so callers can distinguish null from absent columns.
type Record map[string]any

// Table is an open, header-parsed Paradox table. The file content is held in
// memory; catalog tables this tool reads are small.
type Table struct {
	name   string
	fields []Field

	recordSize int
	blockSize  int
	headerSize int
	numRecords int
	fileBlocks int
	firstBlock int

	data []byte
	enc  encoding.Encoding
}

// EncodingByName resolves an IANA charset name ("windows-1251", ...) to an
// encoding usable with Open. An empty name selects windows-1251, the code
// page of the catalogs this tool was built for.
func EncodingByName(name string) (encoding.Encoding, error) {
	if name == "" {
		return charmap.Windows1251, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown catalog encoding %q", name)
	}
	return enc, nil
}

// Open reads and parses the table file at path. The returned Table is
// read-only and safe for concurrent ReadAll calls.
func Open(path string, enc encoding.Encoding) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read paradox table: %w", err)
	}

	t, err := New(data, enc)
	if err != nil {
		return nil, fmt.Errorf("parse paradox table %q: %w", path, err)
	}
	return t, nil
}

// New parses a table from an in-memory file image.
func New(data []byte, enc encoding.Encoding) (*Table, error) {
	if enc == nil {
		enc = charmap.Windows1251
	}
	if len(data) < commonHeaderSize {
		return nil, fmt.Errorf("file too short for paradox header: %d bytes", len(data))
	}

	le := binary.LittleEndian
	t := &Table{
		recordSize: int(le.Uint16(data[offRecordSize:])),
		headerSize: int(le.Uint16(data[offHeaderSize:])),
		numRecords: int(le.Uint32(data[offNumRecords:])),
		fileBlocks: int(le.Uint16(data[offFileBlocks:])),
		firstBlock: int(le.Uint16(data[offFirstBlock:])),
		data:       data,
		enc:        enc,
	}

	fileType := data[offFileType]
	if fileType != fileTypeDBIndexed && fileType != fileTypeDBNotIndexed {
		return nil, fmt.Errorf("not a paradox data file (file type 0x%02x)", fileType)
	}

	t.blockSize = int(data[offMaxTableSize]) * 0x400
	if t.blockSize == 0 {
		return nil, fmt.Errorf("invalid data block size multiplier 0")
	}
	if t.recordSize == 0 {
		return nil, fmt.Errorf("invalid record size 0")
	}
	if t.headerSize < commonHeaderSize || t.headerSize > len(data) {
		return nil, fmt.Errorf("invalid header size %d", t.headerSize)
	}

	numFields := int(le.Uint16(data[offNumFields:]))
	if numFields <= 0 || numFields > 255 {
		return nil, fmt.Errorf("invalid field count %d", numFields)
	}

	fileVersionID := data[offFileVersionID]
	fieldInfoOff := commonHeaderSize
	if fileVersionID >= 0x05 {
		fieldInfoOff += v4HeaderSize
	}

	if err := t.parseFields(fieldInfoOff, numFields, fileVersionID); err != nil {
		return nil, err
	}

	return t, nil
}

// parseFields reads the field descriptor area: (type, size) byte pairs,
// followed by the table name pointer, per-field name pointers, the padded
// table name, and the NUL-terminated field names.
func (t *Table) parseFields(off, numFields int, fileVersionID byte) error {
	data := t.data

	if off+2*numFields > t.headerSize {
		return fmt.Errorf("field descriptors extend past header")
	}

	fields := make([]Field, numFields)
	recordSize := 0
	for i := 0; i < numFields; i++ {
		fields[i].Type = FieldType(data[off+2*i])
		fields[i].Size = int(data[off+2*i+1])
		recordSize += fields[i].Size
	}
	if recordSize != t.recordSize {
		return fmt.Errorf("field sizes sum to %d, record size is %d", recordSize, t.recordSize)
	}

	// table name pointer + one name pointer per field precede the names
	cursor := off + 2*numFields + 4 + 4*numFields

	tableNameLen := 79
	if fileVersionID >= 0x0C {
		tableNameLen = 261
	}
	if cursor+tableNameLen > t.headerSize {
		return fmt.Errorf("table name extends past header")
	}
	t.name = cString(data[cursor : cursor+tableNameLen])
	cursor += tableNameLen

	for i := 0; i < numFields; i++ {
		end := bytes.IndexByte(data[cursor:t.headerSize], 0)
		if end < 0 {
			return fmt.Errorf("unterminated name of field %d", i)
		}
		name, err := t.decodeText(data[cursor : cursor+end])
		if err != nil {
			return fmt.Errorf("decode name of field %d: %w", i, err)
		}
		fields[i].Name = name
		cursor += end + 1
	}

	t.fields = fields
	return nil
}

// Name returns the table name stored in the header.
func (t *Table) Name() string { return t.name }

// Fields returns the table's columns in on-disk order. The slice must not be
// modified.
func (t *Table) Fields() []Field { return t.fields }

// NumRecords returns the record count stored in the header.
func (t *Table) NumRecords() int { return t.numRecords }

// ReadAll walks the data block chain and decodes every record in storage
// order.
func (t *Table) ReadAll() ([]Record, error) {
	records := make([]Record, 0, t.numRecords)

	block := t.firstBlock
	visited := 0
	for block != 0 {
		// a chain longer than the block count is a cycle
		visited++
		if visited > t.fileBlocks {
			return nil, fmt.Errorf("data block chain does not terminate")
		}

		next, blockRecords, err := t.readBlock(block)
		if err != nil {
			return nil, err
		}
		records = append(records, blockRecords...)
		block = next
	}

	return records, nil
}

// readBlock decodes one data block and returns the next block number in the
// chain. Block numbers are 1-based; 0 terminates the chain.
func (t *Table) readBlock(block int) (int, []Record, error) {
	off := t.headerSize + (block-1)*t.blockSize
	if off < t.headerSize || off+blockHeaderSize > len(t.data) {
		return 0, nil, fmt.Errorf("data block %d out of file bounds", block)
	}

	le := binary.LittleEndian
	next := int(le.Uint16(t.data[off:]))
	lastRecordOff := int(int16(le.Uint16(t.data[off+4:])))

	// negative offset marks an empty block
	if lastRecordOff < 0 {
		return next, nil, nil
	}

	numRecords := lastRecordOff/t.recordSize + 1
	end := off + blockHeaderSize + numRecords*t.recordSize
	if end > len(t.data) || numRecords*t.recordSize > t.blockSize-blockHeaderSize {
		return 0, nil, fmt.Errorf("data block %d truncated", block)
	}

	records := make([]Record, 0, numRecords)
	for i := 0; i < numRecords; i++ {
		recOff := off + blockHeaderSize + i*t.recordSize
		rec, err := t.decodeRecord(t.data[recOff : recOff+t.recordSize])
		if err != nil {
			return 0, nil, fmt.Errorf("block %d record %d: %w", block, i, err)
		}
		records = append(records, rec)
	}

	return next, records, nil
}

func (t *Table) decodeRecord(raw []byte) (Record, error) {
	rec := make(Record, len(t.fields))

	pos := 0
	for _, f := range t.fields {
		value, err := t.decodeField(f, raw[pos:pos+f.Size])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		rec[f.Name] = value
		pos += f.Size
	}

	return rec, nil
}

func (t *Table) decodeText(raw []byte) (string, error) {
	// decoders carry transform state, so one is made per call to keep
	// concurrent ReadAll calls safe
	decoded, err := t.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// cString cuts a zero-padded buffer at the first NUL.
func cString(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}
