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

// An InfoType is an SMBIOS structure type code.
type InfoType uint8

// Structure type codes with dedicated Record decoders. Any other code is
// decoded into the catch-all *Structure.
const (
	TypeBIOSInformation           InfoType = 0
	TypeSystem                    InfoType = 1
	TypeBaseBoard                 InfoType = 2
	TypeChassis                   InfoType = 3
	TypeProcessor                 InfoType = 4
	TypeCache                     InfoType = 7
	TypeSystemSlot                InfoType = 9
	TypeOEMStrings                InfoType = 11
	TypePhysicalMemoryArray       InfoType = 16
	TypeMemoryDevice              InfoType = 17
	TypeMemoryArrayMappedAddress  InfoType = 19
	TypeMemoryDeviceMappedAddress InfoType = 20
	TypeSystemBoot                InfoType = 32
	TypeEndOfTable                InfoType = 127
)

// typeEndOfTable indicates the end of a table of Structures.
const typeEndOfTable = uint8(TypeEndOfTable)

// String implements fmt.Stringer.
func (t InfoType) String() string {
	switch t {
	case TypeBIOSInformation:
		return "BIOS Information"
	case TypeSystem:
		return "System Information"
	case TypeBaseBoard:
		return "Base Board Information"
	case TypeChassis:
		return "System Enclosure or Chassis"
	case TypeProcessor:
		return "Processor Information"
	case TypeCache:
		return "Cache Information"
	case TypeSystemSlot:
		return "System Slots"
	case TypeOEMStrings:
		return "OEM Strings"
	case TypePhysicalMemoryArray:
		return "Physical Memory Array"
	case TypeMemoryDevice:
		return "Memory Device"
	case TypeMemoryArrayMappedAddress:
		return "Memory Array Mapped Address"
	case TypeMemoryDeviceMappedAddress:
		return "Memory Device Mapped Address"
	case TypeSystemBoot:
		return "System Boot Information"
	case TypeEndOfTable:
		return "End Of Table"
	default:
		return "Unknown"
	}
}

// A Record is a single decoded SMBIOS structure. Concrete types are the
// typed structures in this package (System, MemoryDevice, ...), EndOfTable,
// and *Structure for type codes without a dedicated decoder.
type Record interface {
	// InfoType returns the structure type code the record was decoded from.
	InfoType() InfoType
}

// An EndOfTable is the sentinel structure marking the logical end of the
// table.
type EndOfTable struct {
	Handle uint16
}

// InfoType implements Record.
func (*EndOfTable) InfoType() InfoType { return TypeEndOfTable }

// decodeStructure dispatches a raw structure to its typed decoder. Unknown
// type codes yield the raw structure itself; forward compatibility with
// vendor-defined types is not an error.
func decodeStructure(s *Structure) (Record, error) {
	switch InfoType(s.Header.Type) {
	case TypeBIOSInformation:
		return decodeBIOSInformation(s)
	case TypeSystem:
		return decodeSystem(s)
	case TypeBaseBoard:
		return decodeBaseBoard(s)
	case TypeChassis:
		return decodeChassis(s)
	case TypeProcessor:
		return decodeProcessor(s)
	case TypeCache:
		return decodeCache(s)
	case TypeSystemSlot:
		return decodeSystemSlot(s)
	case TypeOEMStrings:
		return decodeOEMStrings(s)
	case TypePhysicalMemoryArray:
		return decodePhysicalMemoryArray(s)
	case TypeMemoryDevice:
		return decodeMemoryDevice(s)
	case TypeMemoryArrayMappedAddress:
		return decodeMemoryArrayMappedAddress(s)
	case TypeMemoryDeviceMappedAddress:
		return decodeMemoryDeviceMappedAddress(s)
	case TypeSystemBoot:
		return decodeSystemBoot(s)
	default:
		return s, nil
	}
}
