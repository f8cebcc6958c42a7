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

// BIOSCharacteristics is the BIOS characteristics bit field.
type BIOSCharacteristics uint64

// Functional BIOS characteristics bits.
const (
	BIOSCharacteristicsNotSupported    BIOSCharacteristics = 1 << 3
	BIOSCharacteristicsISA             BIOSCharacteristics = 1 << 4
	BIOSCharacteristicsMCA             BIOSCharacteristics = 1 << 5
	BIOSCharacteristicsEISA            BIOSCharacteristics = 1 << 6
	BIOSCharacteristicsPCI             BIOSCharacteristics = 1 << 7
	BIOSCharacteristicsPCMCIA          BIOSCharacteristics = 1 << 8
	BIOSCharacteristicsPlugAndPlay     BIOSCharacteristics = 1 << 9
	BIOSCharacteristicsAPM             BIOSCharacteristics = 1 << 10
	BIOSCharacteristicsUpgradeable     BIOSCharacteristics = 1 << 11
	BIOSCharacteristicsShadowing       BIOSCharacteristics = 1 << 12
	BIOSCharacteristicsVLVESA          BIOSCharacteristics = 1 << 13
	BIOSCharacteristicsESCD            BIOSCharacteristics = 1 << 14
	BIOSCharacteristicsBootFromCD      BIOSCharacteristics = 1 << 15
	BIOSCharacteristicsSelectableBoot  BIOSCharacteristics = 1 << 16
	BIOSCharacteristicsROMSocketed     BIOSCharacteristics = 1 << 17
	BIOSCharacteristicsBootFromPCMCIA  BIOSCharacteristics = 1 << 18
	BIOSCharacteristicsEDD             BIOSCharacteristics = 1 << 19
	BIOSCharacteristicsNECFloppy       BIOSCharacteristics = 1 << 20
	BIOSCharacteristicsToshibaFloppy   BIOSCharacteristics = 1 << 21
	BIOSCharacteristicsFloppy360KB     BIOSCharacteristics = 1 << 22
	BIOSCharacteristicsFloppy12MB      BIOSCharacteristics = 1 << 23
	BIOSCharacteristicsFloppy720KB     BIOSCharacteristics = 1 << 24
	BIOSCharacteristicsFloppy288MB     BIOSCharacteristics = 1 << 25
	BIOSCharacteristicsPrintScreen     BIOSCharacteristics = 1 << 26
	BIOSCharacteristicsKeyboard8042    BIOSCharacteristics = 1 << 27
	BIOSCharacteristicsSerialServices  BIOSCharacteristics = 1 << 28
	BIOSCharacteristicsPrinterServices BIOSCharacteristics = 1 << 29
	BIOSCharacteristicsCGAMonoVideo    BIOSCharacteristics = 1 << 30
	BIOSCharacteristicsNECPC98         BIOSCharacteristics = 1 << 31
)

// Extension byte 1 bits (offset 12h, SMBIOS 2.1+).
const (
	BIOSExtACPI         uint8 = 1 << 0
	BIOSExtUSBLegacy    uint8 = 1 << 1
	BIOSExtAGP          uint8 = 1 << 2
	BIOSExtI2OBoot      uint8 = 1 << 3
	BIOSExtLS120Boot    uint8 = 1 << 4
	BIOSExtATAPIZIPBoot uint8 = 1 << 5
	BIOSExt1394Boot     uint8 = 1 << 6
	BIOSExtSmartBattery uint8 = 1 << 7
)

// Extension byte 2 bits (offset 13h, SMBIOS 2.4+).
const (
	BIOSExtBootSpec           uint8 = 1 << 0
	BIOSExtNetworkServiceBoot uint8 = 1 << 1
	BIOSExtTargetedContent    uint8 = 1 << 2
	BIOSExtUEFI               uint8 = 1 << 3
	BIOSExtVirtualMachine     uint8 = 1 << 4
)

// A BIOSInformation is a decoded BIOS Information structure (type 0).
type BIOSInformation struct {
	Handle                 uint16
	Vendor                 string
	Version                string
	StartingAddressSegment uint16
	ReleaseDate            string
	ROMSize                uint8
	Characteristics        BIOSCharacteristics

	// SMBIOS 2.1+ / 2.3+ characteristics extension bytes.
	CharacteristicsExt1 *uint8
	CharacteristicsExt2 *uint8

	// SMBIOS 2.4+ release numbers. 0xFF means unsupported per the format,
	// transcribed verbatim.
	BIOSMajorRelease       *uint8
	BIOSMinorRelease       *uint8
	ECFirmwareMajorRelease *uint8
	ECFirmwareMinorRelease *uint8

	// SMBIOS 3.1+ extended ROM size, used when ROMSize is 0xFF.
	ExtendedROMSize *uint16
}

// InfoType implements Record.
func (*BIOSInformation) InfoType() InfoType { return TypeBIOSInformation }

// ROMSizeBytes returns the physical ROM size in bytes, resolving the
// extended size field when the basic field saturates.
func (b *BIOSInformation) ROMSizeBytes() uint64 {
	if b.ROMSize != 0xFF {
		return (uint64(b.ROMSize) + 1) * (64 << 10)
	}
	if b.ExtendedROMSize == nil {
		return (uint64(b.ROMSize) + 1) * (64 << 10)
	}

	// Upper two bits select the unit of the remaining fourteen.
	size := uint64(*b.ExtendedROMSize & 0x3FFF)
	switch *b.ExtendedROMSize >> 14 {
	case 0:
		return size << 20
	case 1:
		return size << 30
	default:
		return 0
	}
}

func decodeBIOSInformation(s *Structure) (Record, error) {
	b := &BIOSInformation{Handle: s.Header.Handle}

	var err error
	if b.Vendor, err = s.stringAt(0x04); err != nil {
		return nil, err
	}
	if b.Version, err = s.stringAt(0x05); err != nil {
		return nil, err
	}
	b.StartingAddressSegment, _ = s.u16(0x06)
	if b.ReleaseDate, err = s.stringAt(0x08); err != nil {
		return nil, err
	}
	b.ROMSize, _ = s.u8(0x09)
	if v, ok := s.u64(0x0A); ok {
		b.Characteristics = BIOSCharacteristics(v)
	}

	b.CharacteristicsExt1 = s.optU8(0x12)
	b.CharacteristicsExt2 = s.optU8(0x13)
	b.BIOSMajorRelease = s.optU8(0x14)
	b.BIOSMinorRelease = s.optU8(0x15)
	b.ECFirmwareMajorRelease = s.optU8(0x16)
	b.ECFirmwareMinorRelease = s.optU8(0x17)
	b.ExtendedROMSize = s.optU16(0x18)

	return b, nil
}
