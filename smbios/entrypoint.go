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
)

// Anchor strings used to detect entry points.
var (
	magic32  = []byte("_SM_")
	magic64  = []byte("_SM3_")
	magicDMI = []byte("_DMI_")
)

// Minimum entry point lengths as of SMBIOS 3.1.1.
const (
	entryPoint32MinLen = 31
	entryPoint64MinLen = 24
)

// An EntryPoint is a validated SMBIOS entry point. EntryPoints contain
// various properties about SMBIOS, including its major, minor, and revision
// version numbers, and the location and bound of the structure table.
//
// Use a type assertion to access detailed EntryPoint information.
type EntryPoint interface {
	// Version returns the SMBIOS version described by the entry point.
	Version() (major, minor, revision int)

	// Table returns the address of the structure table and its size in
	// bytes. For a 64-bit entry point the size is a maximum, not an exact
	// length; the true end of the table is the End-of-Table structure.
	Table() (address uint64, size int)

	// Structures returns an iterator over the structures contained in
	// table, honoring the version and table bound recorded by the entry
	// point. The iterator never reads outside table.
	Structures(table []byte) *Structures
}

// Search scans an arbitrary byte buffer for an SMBIOS entry point anchor,
// validates the entry point it introduces, and returns it. The anchor need
// not be at the start of the buffer; the first occurrence of either anchor
// string is used.
//
// Search never reads outside buf and performs no I/O; sourcing the buffer
// is the caller's responsibility.
func Search(buf []byte) (EntryPoint, error) {
	i32 := bytes.Index(buf, magic32)
	i64 := bytes.Index(buf, magic64)

	switch {
	case i64 != -1 && (i32 == -1 || i64 < i32):
		return search64(buf[i64:], i64)
	case i32 != -1:
		return search32(buf[i32:], i32)
	}

	return nil, &EntryPointError{Reason: EntryPointNotFound, Offset: -1}
}

var _ EntryPoint = &EntryPoint32Bit{}

// EntryPoint32Bit is the SMBIOS 32-bit Entry Point structure, used starting
// in SMBIOS 2.1.
type EntryPoint32Bit struct {
	Anchor                string
	Checksum              uint8
	Length                uint8
	Major                 uint8
	Minor                 uint8
	MaxStructureSize      uint16
	EntryPointRevision    uint8
	FormattedArea         [5]byte
	IntermediateAnchor    string
	IntermediateChecksum  uint8
	StructureTableLength  uint16
	StructureTableAddress uint32
	NumberStructures      uint16
	BCDRevision           uint8
}

// Version implements EntryPoint.
func (ep *EntryPoint32Bit) Version() (major, minor, revision int) {
	return int(ep.Major), int(ep.Minor), 0
}

// Table implements EntryPoint. The returned size is the exact structure
// table length in bytes.
func (ep *EntryPoint32Bit) Table() (address uint64, size int) {
	return uint64(ep.StructureTableAddress), int(ep.StructureTableLength)
}

// Structures implements EntryPoint.
func (ep *EntryPoint32Bit) Structures(table []byte) *Structures {
	return newStructures(table, Version{Major: int(ep.Major), Minor: int(ep.Minor)}, int(ep.StructureTableLength))
}

// search32 validates an EntryPoint32Bit whose anchor occurs at offset off of
// the original search buffer; b is the remainder of that buffer.
func search32(b []byte, off int) (*EntryPoint32Bit, error) {
	if l := len(b); l < entryPoint32MinLen {
		return nil, &EntryPointError{Reason: EntryPointTruncated, Offset: off, Length: l}
	}

	length := b[5]
	if int(length) < entryPoint32MinLen || int(length) > len(b) {
		return nil, &EntryPointError{Reason: EntryPointBadLength, Offset: off, Length: int(length)}
	}

	// The checksum covers exactly the declared entry point length.
	if chk := sum8(b[:length]); chk != 0 {
		return nil, &EntryPointError{Reason: EntryPointBadChecksum, Offset: off, Length: int(length), Checksum: chk}
	}

	// Look for intermediate anchor with DMI magic, then verify the checksum
	// of the intermediate section it introduces.
	iAnchor := b[16:21]
	if !bytes.Equal(iAnchor, magicDMI) {
		return nil, &EntryPointError{Reason: EntryPointBadIntermediateAnchor, Offset: off}
	}
	if chk := sum8(b[16:entryPoint32MinLen]); chk != 0 {
		return nil, &EntryPointError{Reason: EntryPointBadIntermediateChecksum, Offset: off, Checksum: chk}
	}

	if major := b[6]; major < 2 {
		return nil, &EntryPointError{Reason: EntryPointVersionTooOld, Offset: off, Major: major}
	}

	ep := &EntryPoint32Bit{
		Anchor:                string(b[0:4]),
		Checksum:              b[4],
		Length:                length,
		Major:                 b[6],
		Minor:                 b[7],
		MaxStructureSize:      binary.LittleEndian.Uint16(b[8:10]),
		EntryPointRevision:    b[10],
		IntermediateAnchor:    string(iAnchor),
		IntermediateChecksum:  b[21],
		StructureTableLength:  binary.LittleEndian.Uint16(b[22:24]),
		StructureTableAddress: binary.LittleEndian.Uint32(b[24:28]),
		NumberStructures:      binary.LittleEndian.Uint16(b[28:30]),
		BCDRevision:           b[30],
	}
	copy(ep.FormattedArea[:], b[10:15])

	return ep, nil
}

var _ EntryPoint = &EntryPoint64Bit{}

// EntryPoint64Bit is the SMBIOS 64-bit Entry Point structure, used starting
// in SMBIOS 3.0.
type EntryPoint64Bit struct {
	Anchor                string
	Checksum              uint8
	Length                uint8
	Major                 uint8
	Minor                 uint8
	Revision              uint8
	EntryPointRevision    uint8
	Reserved              uint8
	StructureTableMaxSize uint32
	StructureTableAddress uint64
}

// Version implements EntryPoint.
func (ep *EntryPoint64Bit) Version() (major, minor, revision int) {
	return int(ep.Major), int(ep.Minor), int(ep.Revision)
}

// Table implements EntryPoint. The returned size is the maximum possible
// table size; the true end is marked by the End-of-Table structure.
func (ep *EntryPoint64Bit) Table() (address uint64, size int) {
	return ep.StructureTableAddress, int(ep.StructureTableMaxSize)
}

// Structures implements EntryPoint.
func (ep *EntryPoint64Bit) Structures(table []byte) *Structures {
	return newStructures(table, Version{Major: int(ep.Major), Minor: int(ep.Minor)}, int(ep.StructureTableMaxSize))
}

// search64 validates an EntryPoint64Bit whose anchor occurs at offset off of
// the original search buffer; b is the remainder of that buffer.
func search64(b []byte, off int) (*EntryPoint64Bit, error) {
	if l := len(b); l < entryPoint64MinLen {
		return nil, &EntryPointError{Reason: EntryPointTruncated, Offset: off, Length: l}
	}

	length := b[6]
	if int(length) < entryPoint64MinLen || int(length) > len(b) {
		return nil, &EntryPointError{Reason: EntryPointBadLength, Offset: off, Length: int(length)}
	}

	if chk := sum8(b[:length]); chk != 0 {
		return nil, &EntryPointError{Reason: EntryPointBadChecksum, Offset: off, Length: int(length), Checksum: chk}
	}

	if major := b[7]; major < 2 {
		return nil, &EntryPointError{Reason: EntryPointVersionTooOld, Offset: off, Major: major}
	}

	return &EntryPoint64Bit{
		Anchor:                string(b[0:5]),
		Checksum:              b[5],
		Length:                length,
		Major:                 b[7],
		Minor:                 b[8],
		Revision:              b[9],
		EntryPointRevision:    b[10],
		Reserved:              b[11],
		StructureTableMaxSize: binary.LittleEndian.Uint32(b[12:16]),
		StructureTableAddress: binary.LittleEndian.Uint64(b[16:24]),
	}, nil
}

// sum8 computes the modulo-256 sum of b. A valid checksummed region sums
// to zero.
func sum8(b []byte) uint8 {
	var chk uint8
	for _, v := range b {
		chk += v
	}
	return chk
}
