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

// A ChassisType identifies the form factor of an enclosure.
type ChassisType uint8

// Chassis types defined by the SMBIOS specification.
const (
	ChassisTypeOther ChassisType = iota + 1
	ChassisTypeUnknown
	ChassisTypeDesktop
	ChassisTypeLowProfileDesktop
	ChassisTypePizzaBox
	ChassisTypeMiniTower
	ChassisTypeTower
	ChassisTypePortable
	ChassisTypeLaptop
	ChassisTypeNotebook
	ChassisTypeHandHeld
	ChassisTypeDockingStation
	ChassisTypeAllInOne
	ChassisTypeSubNotebook
	ChassisTypeSpaceSaving
	ChassisTypeLunchBox
	ChassisTypeMainServerChassis
	ChassisTypeExpansionChassis
	ChassisTypeSubChassis
	ChassisTypeBusExpansionChassis
	ChassisTypePeripheralChassis
	ChassisTypeRAIDChassis
	ChassisTypeRackMountChassis
	ChassisTypeSealedCasePC
	ChassisTypeMultiSystemChassis
	ChassisTypeCompactPCI
	ChassisTypeAdvancedTCA
	ChassisTypeBlade
	ChassisTypeBladeEnclosure
	ChassisTypeTablet
	ChassisTypeConvertible
	ChassisTypeDetachable
	ChassisTypeIoTGateway
	ChassisTypeEmbeddedPC
	ChassisTypeMiniPC
	ChassisTypeStickPC
)

// String implements fmt.Stringer.
func (t ChassisType) String() string {
	names := []string{
		"Other", "Unknown", "Desktop", "Low Profile Desktop", "Pizza Box",
		"Mini Tower", "Tower", "Portable", "Laptop", "Notebook", "Hand Held",
		"Docking Station", "All In One", "Sub Notebook", "Space-saving",
		"Lunch Box", "Main Server Chassis", "Expansion Chassis", "Sub Chassis",
		"Bus Expansion Chassis", "Peripheral Chassis", "RAID Chassis",
		"Rack Mount Chassis", "Sealed-case PC", "Multi-system Chassis",
		"CompactPCI", "AdvancedTCA", "Blade", "Blade Enclosure", "Tablet",
		"Convertible", "Detachable", "IoT Gateway", "Embedded PC", "Mini PC",
		"Stick PC",
	}
	if t >= 1 && int(t) <= len(names) {
		return names[t-1]
	}
	return fmt.Sprintf("Undefined(%d)", uint8(t))
}

// A ChassisState describes the condition of an enclosure property such as
// its thermal or power supply state.
type ChassisState uint8

// Chassis states defined by the SMBIOS specification.
const (
	ChassisStateOther ChassisState = iota + 1
	ChassisStateUnknown
	ChassisStateSafe
	ChassisStateWarning
	ChassisStateCritical
	ChassisStateNonRecoverable
)

// String implements fmt.Stringer.
func (s ChassisState) String() string {
	switch s {
	case ChassisStateOther:
		return "Other"
	case ChassisStateUnknown:
		return "Unknown"
	case ChassisStateSafe:
		return "Safe"
	case ChassisStateWarning:
		return "Warning"
	case ChassisStateCritical:
		return "Critical"
	case ChassisStateNonRecoverable:
		return "Non-recoverable"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(s))
	}
}

// A ChassisSecurityStatus describes the physical security state of an
// enclosure.
type ChassisSecurityStatus uint8

// Chassis security statuses defined by the SMBIOS specification.
const (
	ChassisSecurityOther ChassisSecurityStatus = iota + 1
	ChassisSecurityUnknown
	ChassisSecurityNone
	ChassisSecurityExternalInterfaceLockedOut
	ChassisSecurityExternalInterfaceEnabled
)

// String implements fmt.Stringer.
func (s ChassisSecurityStatus) String() string {
	switch s {
	case ChassisSecurityOther:
		return "Other"
	case ChassisSecurityUnknown:
		return "Unknown"
	case ChassisSecurityNone:
		return "None"
	case ChassisSecurityExternalInterfaceLockedOut:
		return "External Interface Locked Out"
	case ChassisSecurityExternalInterfaceEnabled:
		return "External Interface Enabled"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(s))
	}
}

// A Chassis is a decoded System Enclosure or Chassis structure (type 3).
type Chassis struct {
	Handle       uint16
	Manufacturer string
	Type         ChassisType
	Lock         bool
	Version      string
	SerialNumber string
	AssetTag     string

	// SMBIOS 2.1+ fields.
	BootUpState      *ChassisState
	PowerSupplyState *ChassisState
	ThermalState     *ChassisState
	SecurityStatus   *ChassisSecurityStatus

	// SMBIOS 2.3+ fields. ContainedElements holds the raw contained element
	// records: ContainedElementCount records of ContainedElementRecordLength
	// bytes each.
	OEMDefined                   *uint32
	Height                       *uint8
	NumberOfPowerCords           *uint8
	ContainedElementCount        *uint8
	ContainedElementRecordLength *uint8
	ContainedElements            []byte

	// SMBIOS 2.7+ field, stored after the variable-length contained
	// elements.
	SKUNumber *string
}

// InfoType implements Record.
func (*Chassis) InfoType() InfoType { return TypeChassis }

func decodeChassis(s *Structure) (Record, error) {
	c := &Chassis{Handle: s.Header.Handle}

	var err error
	if c.Manufacturer, err = s.stringAt(0x04); err != nil {
		return nil, err
	}
	if v, ok := s.u8(0x05); ok {
		// Bit 7 indicates a chassis lock; the remaining bits carry the type.
		c.Lock = v&0x80 != 0
		c.Type = ChassisType(v & 0x7F)
	}
	if c.Version, err = s.stringAt(0x06); err != nil {
		return nil, err
	}
	if c.SerialNumber, err = s.stringAt(0x07); err != nil {
		return nil, err
	}
	if c.AssetTag, err = s.stringAt(0x08); err != nil {
		return nil, err
	}

	if v, ok := s.u8(0x09); ok {
		st := ChassisState(v)
		c.BootUpState = &st
	}
	if v, ok := s.u8(0x0A); ok {
		st := ChassisState(v)
		c.PowerSupplyState = &st
	}
	if v, ok := s.u8(0x0B); ok {
		st := ChassisState(v)
		c.ThermalState = &st
	}
	if v, ok := s.u8(0x0C); ok {
		st := ChassisSecurityStatus(v)
		c.SecurityStatus = &st
	}

	c.OEMDefined = s.optU32(0x0D)
	c.Height = s.optU8(0x11)
	c.NumberOfPowerCords = s.optU8(0x12)
	c.ContainedElementCount = s.optU8(0x13)
	c.ContainedElementRecordLength = s.optU8(0x14)

	// The SKU number string index follows n*m bytes of contained elements.
	if c.ContainedElementCount != nil && c.ContainedElementRecordLength != nil {
		n := int(*c.ContainedElementCount) * int(*c.ContainedElementRecordLength)
		if b, ok := s.bytesAt(0x15, n); ok {
			c.ContainedElements = b
		}
		if c.SKUNumber, err = s.optStringAt(0x15 + n); err != nil {
			return nil, err
		}
	}

	return c, nil
}
