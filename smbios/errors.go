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

import "fmt"

// An EntryPointErrorReason identifies which validation step rejected an
// entry point candidate.
type EntryPointErrorReason int

// Possible EntryPointError reasons.
const (
	// EntryPointNotFound indicates that no anchor signature occurs in the
	// searched buffer.
	EntryPointNotFound EntryPointErrorReason = iota

	// EntryPointTruncated indicates that an anchor signature was found but
	// the buffer ends before the fixed-size entry point structure does.
	EntryPointTruncated

	// EntryPointBadLength indicates that the declared entry point length is
	// smaller than the structure's fixed minimum or larger than the bytes
	// remaining in the buffer.
	EntryPointBadLength

	// EntryPointBadChecksum indicates that the bytes covered by the declared
	// entry point length do not sum to zero modulo 256.
	EntryPointBadChecksum

	// EntryPointBadIntermediateAnchor indicates that a 32-bit entry point
	// does not carry the "_DMI_" intermediate anchor.
	EntryPointBadIntermediateAnchor

	// EntryPointBadIntermediateChecksum indicates that the intermediate
	// (DMI) section of a 32-bit entry point fails its checksum.
	EntryPointBadIntermediateChecksum

	// EntryPointVersionTooOld indicates an SMBIOS major version below 2,
	// which predates the table format decoded by this package.
	EntryPointVersionTooOld
)

// An EntryPointError describes why a buffer does not contain a valid SMBIOS
// entry point.
type EntryPointError struct {
	// Reason identifies the failed validation step.
	Reason EntryPointErrorReason

	// Offset is the byte offset of the anchor signature within the searched
	// buffer, or -1 if no signature was found.
	Offset int

	// Length is the entry point length relevant to the failure: the declared
	// length for length and checksum failures, or the bytes available after
	// the anchor for truncation failures.
	Length int

	// Checksum is the non-zero sum for checksum failures.
	Checksum uint8

	// Major is the rejected major version for version failures.
	Major uint8
}

// Error implements error.
func (e *EntryPointError) Error() string {
	switch e.Reason {
	case EntryPointNotFound:
		return "smbios: no entry point anchor found in buffer"
	case EntryPointTruncated:
		return fmt.Sprintf("smbios: entry point at offset %d truncated: %d bytes remain", e.Offset, e.Length)
	case EntryPointBadLength:
		return fmt.Sprintf("smbios: entry point at offset %d has invalid length %d", e.Offset, e.Length)
	case EntryPointBadChecksum:
		return fmt.Sprintf("smbios: entry point at offset %d has invalid checksum %#02x", e.Offset, e.Checksum)
	case EntryPointBadIntermediateAnchor:
		return fmt.Sprintf("smbios: entry point at offset %d has invalid intermediate anchor", e.Offset)
	case EntryPointBadIntermediateChecksum:
		return fmt.Sprintf("smbios: entry point at offset %d has invalid intermediate checksum %#02x", e.Offset, e.Checksum)
	case EntryPointVersionTooOld:
		return fmt.Sprintf("smbios: entry point at offset %d reports unsupported SMBIOS major version %d", e.Offset, e.Major)
	default:
		return fmt.Sprintf("smbios: invalid entry point at offset %d", e.Offset)
	}
}

// A StructureErrorReason identifies how a single structure within the table
// is malformed.
type StructureErrorReason int

// Possible StructureError reasons.
const (
	// StructureBadLength indicates a declared structure length shorter than
	// the structure header or extending past the remaining table bytes.
	// The structure's true extent is unknowable, so iteration stops.
	StructureBadLength StructureErrorReason = iota

	// StructureUnterminatedStrings indicates that the table ends before the
	// double-NUL terminating the structure's string pool. Iteration stops.
	StructureUnterminatedStrings

	// StructureBadStringIndex indicates a formatted field referencing a
	// string index beyond the structure's own string pool. The structure is
	// skipped and iteration continues.
	StructureBadStringIndex
)

// A StructureError describes a single malformed structure encountered while
// iterating a table. It carries enough context to log or skip the structure.
type StructureError struct {
	// Reason identifies the malformation.
	Reason StructureErrorReason

	// Offset is the byte offset of the structure within the table buffer.
	Offset int

	// Type and Handle are taken from the structure header.
	Type   uint8
	Handle uint16

	// Length is the declared structure length.
	Length uint8

	// Available is the number of table bytes remaining at Offset.
	Available int

	// StringIndex is the offending index for string resolution failures.
	StringIndex uint8
}

// Error implements error.
func (e *StructureError) Error() string {
	switch e.Reason {
	case StructureBadLength:
		return fmt.Sprintf("smbios: structure at offset %d with length %d extends beyond table (%d bytes remain)",
			e.Offset, e.Length, e.Available)
	case StructureUnterminatedStrings:
		return fmt.Sprintf("smbios: structure at offset %d has unterminated string pool", e.Offset)
	case StructureBadStringIndex:
		return fmt.Sprintf("smbios: structure type %d with handle %#04x references invalid string index %d",
			e.Type, e.Handle, e.StringIndex)
	default:
		return fmt.Sprintf("smbios: malformed structure at offset %d", e.Offset)
	}
}
