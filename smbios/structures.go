// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smbios

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/hashicorp/go-multierror"
)

// headerLen is the length of the Header structure.
const headerLen = 4

// A Version is the SMBIOS specification version a table was produced under.
// Field layouts within structures vary with it.
type Version struct {
	Major int
	Minor int
}

// atLeast reports whether v is at least major.minor.
func (v Version) atLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// A Header is a Structure's header: the common fixed prefix of every
// structure in the table.
type Header struct {
	Type   uint8
	Length uint8
	Handle uint16
}

// A Structure is one raw SMBIOS structure: its header, the formatted area
// following the header, and the resolved string pool. Formatted is a
// subslice of the caller's table buffer, never a copy.
//
// Structure is also the catch-all Record yielded for type codes this
// package has no dedicated decoder for, including OEM-defined types.
type Structure struct {
	Header    Header
	Version   Version
	Formatted []byte
	Strings   []string
}

// InfoType implements Record.
func (s *Structure) InfoType() InfoType { return InfoType(s.Header.Type) }

// findString resolves a 1-based string pool index. Index zero means "no
// string" and resolves to the empty string. An index beyond the pool is a
// StructureError.
func (s *Structure) findString(idx uint8) (string, error) {
	if idx == 0 {
		return "", nil
	}
	if int(idx) > len(s.Strings) {
		return "", &StructureError{
			Reason:      StructureBadStringIndex,
			Type:        s.Header.Type,
			Handle:      s.Header.Handle,
			Length:      s.Header.Length,
			StringIndex: idx,
		}
	}
	return s.Strings[idx-1], nil
}

// Field accessors below take offsets as counted from the start of the
// structure header, matching the offset tables in DSP0134. Every read is
// bounded by the structure's own declared length: a field that lies beyond
// it is absent, not zero.

func (s *Structure) u8(off int) (uint8, bool) {
	i := off - headerLen
	if i < 0 || i >= len(s.Formatted) {
		return 0, false
	}
	return s.Formatted[i], true
}

func (s *Structure) u16(off int) (uint16, bool) {
	i := off - headerLen
	if i < 0 || i+2 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s.Formatted[i : i+2]), true
}

func (s *Structure) u32(off int) (uint32, bool) {
	i := off - headerLen
	if i < 0 || i+4 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s.Formatted[i : i+4]), true
}

func (s *Structure) u64(off int) (uint64, bool) {
	i := off - headerLen
	if i < 0 || i+8 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(s.Formatted[i : i+8]), true
}

// bytesAt returns the n formatted bytes starting at off as a subslice.
func (s *Structure) bytesAt(off, n int) ([]byte, bool) {
	i := off - headerLen
	if i < 0 || i+n > len(s.Formatted) {
		return nil, false
	}
	return s.Formatted[i : i+n], true
}

// stringAt resolves the string index stored at off. An absent index byte
// resolves to the empty string.
func (s *Structure) stringAt(off int) (string, error) {
	idx, ok := s.u8(off)
	if !ok {
		return "", nil
	}
	return s.findString(idx)
}

// optStringAt is stringAt for version-gated fields: nil when the index byte
// lies beyond the structure's declared length.
func (s *Structure) optStringAt(off int) (*string, error) {
	idx, ok := s.u8(off)
	if !ok {
		return nil, nil
	}
	str, err := s.findString(idx)
	if err != nil {
		return nil, err
	}
	return &str, nil
}

func (s *Structure) optU8(off int) *uint8 {
	if v, ok := s.u8(off); ok {
		return &v
	}
	return nil
}

func (s *Structure) optU16(off int) *uint16 {
	if v, ok := s.u16(off); ok {
		return &v
	}
	return nil
}

func (s *Structure) optU32(off int) *uint32 {
	if v, ok := s.u32(off); ok {
		return &v
	}
	return nil
}

func (s *Structure) optU64(off int) *uint64 {
	if v, ok := s.u64(off); ok {
		return &v
	}
	return nil
}

// Structures iterates lazily over the structures in a table buffer. It is
// produced by the Structures method on EntryPoint.
//
// A Structures value owns only its cursor; it never mutates the table
// buffer, so any number of independent iterators may walk the same buffer
// concurrently.
type Structures struct {
	version Version
	buf     []byte
	limit   int
	off     int
	done    bool
}

// newStructures builds an iterator over table bounded by the lesser of
// bound and the actual buffer length.
func newStructures(table []byte, version Version, bound int) *Structures {
	if bound > len(table) {
		bound = len(table)
	}
	return &Structures{
		version: version,
		buf:     table,
		limit:   bound,
	}
}

// Next decodes and returns the next structure in the table.
//
// It returns io.EOF when the table is exhausted or after the End-of-Table
// structure has been yielded. A non-EOF error describes a single malformed
// structure: for a bad string index the structure is skipped and iteration
// continues, while structural damage (a length overrun or an unterminated
// string pool) ends iteration, since the extent of the damaged structure
// cannot be known.
func (s *Structures) Next() (Record, error) {
	if s.done || s.limit-s.off < headerLen {
		s.done = true
		return nil, io.EOF
	}

	b := s.buf[s.off:s.limit]
	h := Header{
		Type:   b[0],
		Length: b[1],
		Handle: binary.LittleEndian.Uint16(b[2:4]),
	}

	if int(h.Length) < headerLen || int(h.Length) > len(b) {
		s.done = true
		return nil, &StructureError{
			Reason:    StructureBadLength,
			Offset:    s.off,
			Type:      h.Type,
			Handle:    h.Handle,
			Length:    h.Length,
			Available: len(b),
		}
	}

	term := indexNulNul(b[h.Length:])
	if term == -1 {
		s.done = true
		return nil, &StructureError{
			Reason:    StructureUnterminatedStrings,
			Offset:    s.off,
			Type:      h.Type,
			Handle:    h.Handle,
			Length:    h.Length,
			Available: len(b),
		}
	}

	st := &Structure{
		Header:    h,
		Version:   s.version,
		Formatted: b[headerLen:h.Length],
		Strings:   poolStrings(b[h.Length : int(h.Length)+term+1]),
	}

	off := s.off
	s.off += int(h.Length) + term + 1

	// The End-of-Table structure is yielded once, then iteration stops.
	// The 64-bit entry point carries no exact table length, so this marker
	// is the only reliable end for such tables.
	if h.Type == typeEndOfTable {
		s.done = true
		return &EndOfTable{Handle: h.Handle}, nil
	}

	rec, err := decodeStructure(st)
	if err != nil {
		var serr *StructureError
		if errors.As(err, &serr) {
			serr.Offset = off
		}
		return nil, err
	}
	return rec, nil
}

// All drains the iterator, returning every structure that decoded cleanly
// along with an aggregate of the per-structure errors encountered, if any.
func (s *Structures) All() ([]Record, error) {
	var (
		recs []Record
		errs *multierror.Error
	)

	for {
		rec, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return recs, errs.ErrorOrNil()
			}
			errs = multierror.Append(errs, err)
			continue
		}
		recs = append(recs, rec)
	}
}

// indexNulNul returns the index of the second byte of the first NUL-NUL
// pair in buf, or -1 if no such pair exists.
func indexNulNul(buf []byte) int {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == 0x00 && buf[i+1] == 0x00 {
			return i + 1
		}
	}
	return -1
}

// poolStrings splits a string pool, terminator included, into its strings.
func poolStrings(pool []byte) []string {
	var ss []string
	for _, b := range bytes.Split(pool, []byte{0x00}) {
		if len(b) > 0 {
			ss = append(ss, string(b))
		}
	}
	return ss
}
