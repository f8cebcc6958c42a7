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

// A MemoryArrayLocation identifies where a physical memory array sits.
type MemoryArrayLocation uint8

// Memory array locations defined by the SMBIOS specification.
const (
	MemoryArrayLocationOther MemoryArrayLocation = iota + 1
	MemoryArrayLocationUnknown
	MemoryArrayLocationSystemBoard
	MemoryArrayLocationISAAddOnCard
	MemoryArrayLocationEISAAddOnCard
	MemoryArrayLocationPCIAddOnCard
	MemoryArrayLocationMCAAddOnCard
	MemoryArrayLocationPCMCIAAddOnCard
	MemoryArrayLocationProprietaryAddOnCard
	MemoryArrayLocationNuBus
)

// String implements fmt.Stringer.
func (l MemoryArrayLocation) String() string {
	switch l {
	case MemoryArrayLocationOther:
		return "Other"
	case MemoryArrayLocationUnknown:
		return "Unknown"
	case MemoryArrayLocationSystemBoard:
		return "System board or motherboard"
	case MemoryArrayLocationISAAddOnCard:
		return "ISA add-on card"
	case MemoryArrayLocationEISAAddOnCard:
		return "EISA add-on card"
	case MemoryArrayLocationPCIAddOnCard:
		return "PCI add-on card"
	case MemoryArrayLocationMCAAddOnCard:
		return "MCA add-on card"
	case MemoryArrayLocationPCMCIAAddOnCard:
		return "PCMCIA add-on card"
	case MemoryArrayLocationProprietaryAddOnCard:
		return "Proprietary add-on card"
	case MemoryArrayLocationNuBus:
		return "NuBus"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(l))
	}
}

// A MemoryArrayUse identifies the function of a physical memory array.
type MemoryArrayUse uint8

// Memory array uses defined by the SMBIOS specification.
const (
	MemoryArrayUseOther MemoryArrayUse = iota + 1
	MemoryArrayUseUnknown
	MemoryArrayUseSystemMemory
	MemoryArrayUseVideoMemory
	MemoryArrayUseFlashMemory
	MemoryArrayUseNonVolatileRAM
	MemoryArrayUseCacheMemory
)

// String implements fmt.Stringer.
func (u MemoryArrayUse) String() string {
	switch u {
	case MemoryArrayUseOther:
		return "Other"
	case MemoryArrayUseUnknown:
		return "Unknown"
	case MemoryArrayUseSystemMemory:
		return "System memory"
	case MemoryArrayUseVideoMemory:
		return "Video memory"
	case MemoryArrayUseFlashMemory:
		return "Flash memory"
	case MemoryArrayUseNonVolatileRAM:
		return "Non-volatile RAM"
	case MemoryArrayUseCacheMemory:
		return "Cache memory"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(u))
	}
}

// A PhysicalMemoryArray is a decoded Physical Memory Array structure
// (type 16): a collection of memory devices that operate together to form
// a memory address space.
type PhysicalMemoryArray struct {
	Handle          uint16
	Location        MemoryArrayLocation
	Use             MemoryArrayUse
	ErrorCorrection uint8

	// MaximumCapacity is in kilobytes; the value 0x80000000 defers to
	// ExtendedMaximumCapacity.
	MaximumCapacity        uint32
	ErrorInformationHandle uint16
	NumberOfMemoryDevices  uint16

	// SMBIOS 2.7+ field, in bytes.
	ExtendedMaximumCapacity *uint64
}

// InfoType implements Record.
func (*PhysicalMemoryArray) InfoType() InfoType { return TypePhysicalMemoryArray }

// MaximumCapacityBytes resolves the extended capacity field when the basic
// field saturates.
func (p *PhysicalMemoryArray) MaximumCapacityBytes() uint64 {
	if p.MaximumCapacity == 0x80000000 && p.ExtendedMaximumCapacity != nil {
		return *p.ExtendedMaximumCapacity
	}
	return uint64(p.MaximumCapacity) << 10
}

func decodePhysicalMemoryArray(s *Structure) (Record, error) {
	p := &PhysicalMemoryArray{Handle: s.Header.Handle}

	if v, ok := s.u8(0x04); ok {
		p.Location = MemoryArrayLocation(v)
	}
	if v, ok := s.u8(0x05); ok {
		p.Use = MemoryArrayUse(v)
	}
	p.ErrorCorrection, _ = s.u8(0x06)
	p.MaximumCapacity, _ = s.u32(0x07)
	p.ErrorInformationHandle, _ = s.u16(0x0B)
	p.NumberOfMemoryDevices, _ = s.u16(0x0D)
	p.ExtendedMaximumCapacity = s.optU64(0x0F)

	return p, nil
}

// A MemoryFormFactor identifies the physical packaging of a memory device.
type MemoryFormFactor uint8

// Memory form factors defined by the SMBIOS specification.
const (
	MemoryFormFactorOther MemoryFormFactor = iota + 1
	MemoryFormFactorUnknown
	MemoryFormFactorSIMM
	MemoryFormFactorSIP
	MemoryFormFactorChip
	MemoryFormFactorDIP
	MemoryFormFactorZIP
	MemoryFormFactorProprietaryCard
	MemoryFormFactorDIMM
	MemoryFormFactorTSOP
	MemoryFormFactorRowOfChips
	MemoryFormFactorRIMM
	MemoryFormFactorSODIMM
	MemoryFormFactorSRIMM
	MemoryFormFactorFBDIMM
	MemoryFormFactorDie
)

// String implements fmt.Stringer.
func (f MemoryFormFactor) String() string {
	names := []string{
		"Other", "Unknown", "SIMM", "SIP", "Chip", "DIP", "ZIP",
		"Proprietary Card", "DIMM", "TSOP", "Row Of Chips", "RIMM",
		"SODIMM", "SRIMM", "FB-DIMM", "Die",
	}
	if f >= 1 && int(f) <= len(names) {
		return names[f-1]
	}
	return fmt.Sprintf("Undefined(%d)", uint8(f))
}

// A MemoryDeviceType identifies the memory technology of a device.
type MemoryDeviceType uint8

// Memory device types defined by the SMBIOS specification.
const (
	MemoryDeviceTypeOther MemoryDeviceType = iota + 1
	MemoryDeviceTypeUnknown
	MemoryDeviceTypeDRAM
	MemoryDeviceTypeEDRAM
	MemoryDeviceTypeVRAM
	MemoryDeviceTypeSRAM
	MemoryDeviceTypeRAM
	MemoryDeviceTypeROM
	MemoryDeviceTypeFlash
	MemoryDeviceTypeEEPROM
	MemoryDeviceTypeFEPROM
	MemoryDeviceTypeEPROM
	MemoryDeviceTypeCDRAM
	MemoryDeviceType3DRAM
	MemoryDeviceTypeSDRAM
	MemoryDeviceTypeSGRAM
	MemoryDeviceTypeRDRAM
	MemoryDeviceTypeDDR
	MemoryDeviceTypeDDR2
	MemoryDeviceTypeDDR2FBDIMM
	_
	_
	_
	MemoryDeviceTypeDDR3
	MemoryDeviceTypeFBD2
	MemoryDeviceTypeDDR4
	MemoryDeviceTypeLPDDR
	MemoryDeviceTypeLPDDR2
	MemoryDeviceTypeLPDDR3
	MemoryDeviceTypeLPDDR4
	MemoryDeviceTypeLogicalNonVolatile
	MemoryDeviceTypeHBM
	MemoryDeviceTypeHBM2
	MemoryDeviceTypeDDR5
	MemoryDeviceTypeLPDDR5
)

// String implements fmt.Stringer.
func (t MemoryDeviceType) String() string {
	switch t {
	case MemoryDeviceTypeOther:
		return "Other"
	case MemoryDeviceTypeUnknown:
		return "Unknown"
	case MemoryDeviceTypeDRAM:
		return "DRAM"
	case MemoryDeviceTypeSDRAM:
		return "SDRAM"
	case MemoryDeviceTypeDDR:
		return "DDR"
	case MemoryDeviceTypeDDR2:
		return "DDR2"
	case MemoryDeviceTypeDDR3:
		return "DDR3"
	case MemoryDeviceTypeDDR4:
		return "DDR4"
	case MemoryDeviceTypeDDR5:
		return "DDR5"
	case MemoryDeviceTypeLPDDR3:
		return "LPDDR3"
	case MemoryDeviceTypeLPDDR4:
		return "LPDDR4"
	case MemoryDeviceTypeLPDDR5:
		return "LPDDR5"
	case MemoryDeviceTypeHBM:
		return "HBM"
	case MemoryDeviceTypeHBM2:
		return "HBM2"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(t))
	}
}

// A MemoryDevice is a decoded Memory Device structure (type 17): one
// socketed or soldered memory module belonging to a PhysicalMemoryArray.
type MemoryDevice struct {
	Handle                 uint16
	ArrayHandle            uint16
	ErrorInformationHandle uint16
	TotalWidth             uint16
	DataWidth              uint16

	// Size carries the raw size field: bit 15 selects kilobyte over
	// megabyte granularity, 0x7FFF defers to ExtendedSize, 0xFFFF is
	// unknown and zero is an empty socket. Use SizeBytes for the resolved
	// value.
	Size uint16

	FormFactor    MemoryFormFactor
	DeviceSet     uint8
	DeviceLocator string
	BankLocator   string
	Type          MemoryDeviceType
	TypeDetail    uint16

	// SMBIOS 2.3+ fields.
	Speed        *uint16
	Manufacturer *string
	SerialNumber *string
	AssetTag     *string
	PartNumber   *string

	// SMBIOS 2.6+ field: rank information in the low nibble.
	Attributes *uint8

	// SMBIOS 2.7+ fields. ExtendedSize is in megabytes.
	ExtendedSize    *uint32
	ConfiguredSpeed *uint16

	// SMBIOS 2.8+ fields, in millivolts.
	MinimumVoltage    *uint16
	MaximumVoltage    *uint16
	ConfiguredVoltage *uint16
}

// InfoType implements Record.
func (*MemoryDevice) InfoType() InfoType { return TypeMemoryDevice }

// Empty reports whether the socket is present but unpopulated.
func (md *MemoryDevice) Empty() bool { return md.Size == 0 }

// SizeBytes resolves the device capacity in bytes: the granularity bit, the
// extended size field for devices of 32 GB and larger, and the unknown and
// empty sentinels (both zero).
func (md *MemoryDevice) SizeBytes() uint64 {
	switch md.Size {
	case 0, 0xFFFF:
		return 0
	case 0x7FFF:
		if md.ExtendedSize == nil {
			return 0
		}
		return uint64(*md.ExtendedSize&0x7FFFFFFF) << 20
	}

	if md.Size&0x8000 != 0 {
		return uint64(md.Size&^0x8000) << 10
	}
	return uint64(md.Size) << 20
}

func decodeMemoryDevice(s *Structure) (Record, error) {
	md := &MemoryDevice{Handle: s.Header.Handle}

	md.ArrayHandle, _ = s.u16(0x04)
	md.ErrorInformationHandle, _ = s.u16(0x06)
	md.TotalWidth, _ = s.u16(0x08)
	md.DataWidth, _ = s.u16(0x0A)
	md.Size, _ = s.u16(0x0C)
	if v, ok := s.u8(0x0E); ok {
		md.FormFactor = MemoryFormFactor(v)
	}
	md.DeviceSet, _ = s.u8(0x0F)

	var err error
	if md.DeviceLocator, err = s.stringAt(0x10); err != nil {
		return nil, err
	}
	if md.BankLocator, err = s.stringAt(0x11); err != nil {
		return nil, err
	}
	if v, ok := s.u8(0x12); ok {
		md.Type = MemoryDeviceType(v)
	}
	md.TypeDetail, _ = s.u16(0x13)

	md.Speed = s.optU16(0x15)
	if md.Manufacturer, err = s.optStringAt(0x17); err != nil {
		return nil, err
	}
	if md.SerialNumber, err = s.optStringAt(0x18); err != nil {
		return nil, err
	}
	if md.AssetTag, err = s.optStringAt(0x19); err != nil {
		return nil, err
	}
	if md.PartNumber, err = s.optStringAt(0x1A); err != nil {
		return nil, err
	}

	md.Attributes = s.optU8(0x1B)
	md.ExtendedSize = s.optU32(0x1C)
	md.ConfiguredSpeed = s.optU16(0x20)
	md.MinimumVoltage = s.optU16(0x22)
	md.MaximumVoltage = s.optU16(0x24)
	md.ConfiguredVoltage = s.optU16(0x26)

	return md, nil
}

// A MemoryArrayMappedAddress is a decoded Memory Array Mapped Address
// structure (type 19): one contiguous address range mapped to a
// PhysicalMemoryArray.
type MemoryArrayMappedAddress struct {
	Handle uint16

	// Starting and ending addresses are in kilobytes; 0xFFFFFFFF defers to
	// the extended fields.
	StartingAddress uint32
	EndingAddress   uint32

	MemoryArrayHandle uint16
	PartitionWidth    uint8

	// SMBIOS 2.7+ fields, in bytes.
	ExtendedStartingAddress *uint64
	ExtendedEndingAddress   *uint64
}

// InfoType implements Record.
func (*MemoryArrayMappedAddress) InfoType() InfoType { return TypeMemoryArrayMappedAddress }

func decodeMemoryArrayMappedAddress(s *Structure) (Record, error) {
	m := &MemoryArrayMappedAddress{Handle: s.Header.Handle}

	m.StartingAddress, _ = s.u32(0x04)
	m.EndingAddress, _ = s.u32(0x08)
	m.MemoryArrayHandle, _ = s.u16(0x0C)
	m.PartitionWidth, _ = s.u8(0x0E)
	m.ExtendedStartingAddress = s.optU64(0x0F)
	m.ExtendedEndingAddress = s.optU64(0x17)

	return m, nil
}

// A MemoryDeviceMappedAddress is a decoded Memory Device Mapped Address
// structure (type 20): one address range mapped to a single MemoryDevice.
type MemoryDeviceMappedAddress struct {
	Handle uint16

	// Starting and ending addresses are in kilobytes; 0xFFFFFFFF defers to
	// the extended fields.
	StartingAddress uint32
	EndingAddress   uint32

	MemoryDeviceHandle             uint16
	MemoryArrayMappedAddressHandle uint16
	PartitionRowPosition           uint8
	InterleavePosition             uint8
	InterleavedDataDepth           uint8

	// SMBIOS 2.7+ fields, in bytes.
	ExtendedStartingAddress *uint64
	ExtendedEndingAddress   *uint64
}

// InfoType implements Record.
func (*MemoryDeviceMappedAddress) InfoType() InfoType { return TypeMemoryDeviceMappedAddress }

func decodeMemoryDeviceMappedAddress(s *Structure) (Record, error) {
	m := &MemoryDeviceMappedAddress{Handle: s.Header.Handle}

	m.StartingAddress, _ = s.u32(0x04)
	m.EndingAddress, _ = s.u32(0x08)
	m.MemoryDeviceHandle, _ = s.u16(0x0C)
	m.MemoryArrayMappedAddressHandle, _ = s.u16(0x0E)
	m.PartitionRowPosition, _ = s.u8(0x10)
	m.InterleavePosition, _ = s.u8(0x11)
	m.InterleavedDataDepth, _ = s.u8(0x12)
	m.ExtendedStartingAddress = s.optU64(0x13)
	m.ExtendedEndingAddress = s.optU64(0x1B)

	return m, nil
}
