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
	"fmt"

	"github.com/google/uuid"
)

// A WakeUpType identifies the event that last switched the system on.
type WakeUpType uint8

// Wake-up types defined by the SMBIOS specification.
const (
	WakeUpReserved WakeUpType = iota
	WakeUpOther
	WakeUpUnknown
	WakeUpAPMTimer
	WakeUpModemRing
	WakeUpLANRemote
	WakeUpPowerSwitch
	WakeUpPCIPME
	WakeUpACPowerRestored
)

// String implements fmt.Stringer.
func (w WakeUpType) String() string {
	switch w {
	case WakeUpReserved:
		return "Reserved"
	case WakeUpOther:
		return "Other"
	case WakeUpUnknown:
		return "Unknown"
	case WakeUpAPMTimer:
		return "APM Timer"
	case WakeUpModemRing:
		return "Modem Ring"
	case WakeUpLANRemote:
		return "LAN Remote"
	case WakeUpPowerSwitch:
		return "Power Switch"
	case WakeUpPCIPME:
		return "PCI PME#"
	case WakeUpACPowerRestored:
		return "AC Power Restored"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(w))
	}
}

// A System is a decoded System Information structure (type 1).
type System struct {
	Handle       uint16
	Manufacturer string
	ProductName  string
	Version      string
	SerialNumber string

	// SMBIOS 2.1+ fields.
	UUID   *uuid.UUID
	WakeUp *WakeUpType

	// SMBIOS 2.4+ fields.
	SKUNumber *string
	Family    *string
}

// InfoType implements Record.
func (*System) InfoType() InfoType { return TypeSystem }

func decodeSystem(s *Structure) (Record, error) {
	sys := &System{Handle: s.Header.Handle}

	var err error
	if sys.Manufacturer, err = s.stringAt(0x04); err != nil {
		return nil, err
	}
	if sys.ProductName, err = s.stringAt(0x05); err != nil {
		return nil, err
	}
	if sys.Version, err = s.stringAt(0x06); err != nil {
		return nil, err
	}
	if sys.SerialNumber, err = s.stringAt(0x07); err != nil {
		return nil, err
	}

	if b, ok := s.bytesAt(0x08, 16); ok {
		u := systemUUID(b, s.Version)
		sys.UUID = &u
	}
	if v, ok := s.u8(0x18); ok {
		w := WakeUpType(v)
		sys.WakeUp = &w
	}

	if sys.SKUNumber, err = s.optStringAt(0x19); err != nil {
		return nil, err
	}
	if sys.Family, err = s.optStringAt(0x1A); err != nil {
		return nil, err
	}

	return sys, nil
}

// systemUUID interprets the 16 UUID bytes of a System structure. Starting
// with SMBIOS 2.6 the first three fields are encoded little-endian; earlier
// tables carry the bytes in network order. All-zero and all-0xFF values
// ("not set" and "not settable") are transcribed verbatim.
func systemUUID(b []byte, v Version) uuid.UUID {
	var raw [16]byte
	copy(raw[:], b)

	if v.atLeast(2, 6) {
		raw[0], raw[1], raw[2], raw[3] = raw[3], raw[2], raw[1], raw[0]
		raw[4], raw[5] = raw[5], raw[4]
		raw[6], raw[7] = raw[7], raw[6]
	}

	// FromBytes only fails on a length other than 16.
	u, _ := uuid.FromBytes(raw[:])
	return u
}
