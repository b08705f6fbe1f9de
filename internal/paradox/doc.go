// Package paradox reads Borland Paradox table files (.DB).
//
// Only the data-file layout needed to read a price catalog is implemented:
// the common header, the version 4.0+ header extension, field descriptors
// and names, and the linked chain of fixed-size data blocks. Values are
// decoded per the published format notes: integers and doubles are stored
// big-endian with a flipped sign bit, text fields are single-byte encoded
// (windows-1251 for the catalogs this tool reads) and decoded through
// golang.org/x/text. Write support, indexes and BLOb files are out of scope.
package paradox
