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

// A ProcessorType identifies the kind of processor a Processor structure
// describes.
type ProcessorType uint8

// Processor types defined by the SMBIOS specification.
const (
	ProcessorTypeOther ProcessorType = iota + 1
	ProcessorTypeUnknown
	ProcessorTypeCentralProcessor
	ProcessorTypeMathProcessor
	ProcessorTypeDSPProcessor
	ProcessorTypeVideoProcessor
)

// String implements fmt.Stringer.
func (t ProcessorType) String() string {
	switch t {
	case ProcessorTypeOther:
		return "Other"
	case ProcessorTypeUnknown:
		return "Unknown"
	case ProcessorTypeCentralProcessor:
		return "Central Processor"
	case ProcessorTypeMathProcessor:
		return "Math Processor"
	case ProcessorTypeDSPProcessor:
		return "DSP Processor"
	case ProcessorTypeVideoProcessor:
		return "Video Processor"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(t))
	}
}

// ProcessorStatus is the processor status byte.
type ProcessorStatus uint8

// SocketPopulated reports whether the socket carries a processor.
func (s ProcessorStatus) SocketPopulated() bool { return s&0x40 != 0 }

// CPUStatus returns the status sub-field: 0 unknown, 1 enabled, 2 disabled
// by user, 3 disabled by BIOS, 4 idle.
func (s ProcessorStatus) CPUStatus() uint8 { return uint8(s) & 0x07 }

// ProcessorCharacteristics is the processor characteristics bit field
// (SMBIOS 2.6+).
type ProcessorCharacteristics uint16

// Processor characteristics bits.
const (
	ProcessorReserved                ProcessorCharacteristics = 1 << 0
	ProcessorUnknown                 ProcessorCharacteristics = 1 << 1
	Processor64BitCapable            ProcessorCharacteristics = 1 << 2
	ProcessorMultiCore               ProcessorCharacteristics = 1 << 3
	ProcessorHardwareThread          ProcessorCharacteristics = 1 << 4
	ProcessorExecuteProtection       ProcessorCharacteristics = 1 << 5
	ProcessorEnhancedVirtualization  ProcessorCharacteristics = 1 << 6
	ProcessorPowerPerformanceControl ProcessorCharacteristics = 1 << 7
	Processor128BitCapable           ProcessorCharacteristics = 1 << 8
)

// A Processor is a decoded Processor Information structure (type 4).
type Processor struct {
	Handle            uint16
	SocketDesignation string
	Type              ProcessorType

	// Family is the 16-bit family number: the Processor Family 2 field when
	// the structure carries one, the single-byte field otherwise.
	Family uint16

	Manufacturer  string
	ID            uint64
	Version       string
	Voltage       uint8
	ExternalClock uint16
	MaxSpeed      uint16
	CurrentSpeed  uint16
	Status        ProcessorStatus
	Upgrade       uint8

	// SMBIOS 2.1+ fields.
	L1CacheHandle *uint16
	L2CacheHandle *uint16
	L3CacheHandle *uint16

	// SMBIOS 2.3+ fields.
	SerialNumber *string
	AssetTag     *string
	PartNumber   *string

	// SMBIOS 2.5+ fields, widened to 16 bits by the 3.0 layout when the
	// structure carries the wide variants.
	CoreCount   *uint16
	CoreEnabled *uint16
	ThreadCount *uint16

	// SMBIOS 2.6+ field.
	Characteristics *ProcessorCharacteristics
}

// InfoType implements Record.
func (*Processor) InfoType() InfoType { return TypeProcessor }

func decodeProcessor(s *Structure) (Record, error) {
	p := &Processor{Handle: s.Header.Handle}

	var err error
	if p.SocketDesignation, err = s.stringAt(0x04); err != nil {
		return nil, err
	}
	if v, ok := s.u8(0x05); ok {
		p.Type = ProcessorType(v)
	}
	if v, ok := s.u8(0x06); ok {
		p.Family = uint16(v)
	}
	if p.Manufacturer, err = s.stringAt(0x07); err != nil {
		return nil, err
	}
	p.ID, _ = s.u64(0x08)
	if p.Version, err = s.stringAt(0x10); err != nil {
		return nil, err
	}
	p.Voltage, _ = s.u8(0x11)
	p.ExternalClock, _ = s.u16(0x12)
	p.MaxSpeed, _ = s.u16(0x14)
	p.CurrentSpeed, _ = s.u16(0x16)
	if v, ok := s.u8(0x18); ok {
		p.Status = ProcessorStatus(v)
	}
	p.Upgrade, _ = s.u8(0x19)

	p.L1CacheHandle = s.optU16(0x1A)
	p.L2CacheHandle = s.optU16(0x1C)
	p.L3CacheHandle = s.optU16(0x1E)

	if p.SerialNumber, err = s.optStringAt(0x20); err != nil {
		return nil, err
	}
	if p.AssetTag, err = s.optStringAt(0x21); err != nil {
		return nil, err
	}
	if p.PartNumber, err = s.optStringAt(0x22); err != nil {
		return nil, err
	}

	if v, ok := s.u8(0x23); ok {
		count := uint16(v)
		p.CoreCount = &count
	}
	if v, ok := s.u8(0x24); ok {
		count := uint16(v)
		p.CoreEnabled = &count
	}
	if v, ok := s.u8(0x25); ok {
		count := uint16(v)
		p.ThreadCount = &count
	}
	if v, ok := s.u16(0x26); ok {
		ch := ProcessorCharacteristics(v)
		p.Characteristics = &ch
	}

	// The 2.6 layout widens the family number and the 3.0 layout widens the
	// core and thread counts; prefer the wide fields when present.
	if v, ok := s.u16(0x28); ok {
		p.Family = v
	}
	if v, ok := s.u16(0x2A); ok {
		p.CoreCount = &v
	}
	if v, ok := s.u16(0x2C); ok {
		p.CoreEnabled = &v
	}
	if v, ok := s.u16(0x2E); ok {
		p.ThreadCount = &v
	}

	return p, nil
}
