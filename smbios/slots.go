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

// A SlotUsage describes whether a system slot is occupied.
type SlotUsage uint8

// Slot current usage values defined by the SMBIOS specification.
const (
	SlotUsageOther SlotUsage = iota + 1
	SlotUsageUnknown
	SlotUsageAvailable
	SlotUsageInUse
	SlotUsageUnavailable
)

// String implements fmt.Stringer.
func (u SlotUsage) String() string {
	switch u {
	case SlotUsageOther:
		return "Other"
	case SlotUsageUnknown:
		return "Unknown"
	case SlotUsageAvailable:
		return "Available"
	case SlotUsageInUse:
		return "In Use"
	case SlotUsageUnavailable:
		return "Unavailable"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(u))
	}
}

// A SystemSlot is a decoded System Slots structure (type 9).
type SystemSlot struct {
	Handle           uint16
	Designation      string
	Type             uint8
	DataBusWidth     uint8
	CurrentUsage     SlotUsage
	Length           uint8
	ID               uint16
	Characteristics1 uint8

	// SMBIOS 2.1+ field.
	Characteristics2 *uint8

	// SMBIOS 2.6+ fields locating the slot on the PCI bus.
	SegmentGroupNumber   *uint16
	BusNumber            *uint8
	DeviceFunctionNumber *uint8
}

// InfoType implements Record.
func (*SystemSlot) InfoType() InfoType { return TypeSystemSlot }

func decodeSystemSlot(s *Structure) (Record, error) {
	sl := &SystemSlot{Handle: s.Header.Handle}

	var err error
	if sl.Designation, err = s.stringAt(0x04); err != nil {
		return nil, err
	}
	sl.Type, _ = s.u8(0x05)
	sl.DataBusWidth, _ = s.u8(0x06)
	if v, ok := s.u8(0x07); ok {
		sl.CurrentUsage = SlotUsage(v)
	}
	sl.Length, _ = s.u8(0x08)
	sl.ID, _ = s.u16(0x09)
	sl.Characteristics1, _ = s.u8(0x0B)

	sl.Characteristics2 = s.optU8(0x0C)
	sl.SegmentGroupNumber = s.optU16(0x0D)
	sl.BusNumber = s.optU8(0x0F)
	sl.DeviceFunctionNumber = s.optU8(0x10)

	return sl, nil
}
