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

// BaseBoardFlags is the base board feature flags byte.
type BaseBoardFlags uint8

// Base board feature flags.
const (
	BaseBoardHostingBoard     BaseBoardFlags = 1 << 0
	BaseBoardRequiresDaughter BaseBoardFlags = 1 << 1
	BaseBoardRemovable        BaseBoardFlags = 1 << 2
	BaseBoardReplaceable      BaseBoardFlags = 1 << 3
	BaseBoardHotSwappable     BaseBoardFlags = 1 << 4
)

// A BoardType identifies the kind of board described by a BaseBoard
// structure.
type BoardType uint8

// Board types defined by the SMBIOS specification.
const (
	BoardTypeUnknown BoardType = iota + 1
	BoardTypeOther
	BoardTypeServerBlade
	BoardTypeConnectivitySwitch
	BoardTypeSystemManagementModule
	BoardTypeProcessorModule
	BoardTypeIOModule
	BoardTypeMemoryModule
	BoardTypeDaughterBoard
	BoardTypeMotherboard
	BoardTypeProcessorMemoryModule
	BoardTypeProcessorIOModule
	BoardTypeInterconnectBoard
)

// String implements fmt.Stringer.
func (t BoardType) String() string {
	switch t {
	case BoardTypeUnknown:
		return "Unknown"
	case BoardTypeOther:
		return "Other"
	case BoardTypeServerBlade:
		return "Server Blade"
	case BoardTypeConnectivitySwitch:
		return "Connectivity Switch"
	case BoardTypeSystemManagementModule:
		return "System Management Module"
	case BoardTypeProcessorModule:
		return "Processor Module"
	case BoardTypeIOModule:
		return "I/O Module"
	case BoardTypeMemoryModule:
		return "Memory Module"
	case BoardTypeDaughterBoard:
		return "Daughter Board"
	case BoardTypeMotherboard:
		return "Motherboard"
	case BoardTypeProcessorMemoryModule:
		return "Processor/Memory Module"
	case BoardTypeProcessorIOModule:
		return "Processor/IO Module"
	case BoardTypeInterconnectBoard:
		return "Interconnect Board"
	default:
		return fmt.Sprintf("Undefined(%d)", uint8(t))
	}
}

// A BaseBoard is a decoded Base Board Information structure (type 2).
type BaseBoard struct {
	Handle            uint16
	Manufacturer      string
	Product           string
	Version           string
	SerialNumber      string
	AssetTag          string
	FeatureFlags      BaseBoardFlags
	LocationInChassis string
	ChassisHandle     uint16
	BoardType         BoardType
}

// InfoType implements Record.
func (*BaseBoard) InfoType() InfoType { return TypeBaseBoard }

func decodeBaseBoard(s *Structure) (Record, error) {
	bb := &BaseBoard{Handle: s.Header.Handle}

	var err error
	if bb.Manufacturer, err = s.stringAt(0x04); err != nil {
		return nil, err
	}
	if bb.Product, err = s.stringAt(0x05); err != nil {
		return nil, err
	}
	if bb.Version, err = s.stringAt(0x06); err != nil {
		return nil, err
	}
	if bb.SerialNumber, err = s.stringAt(0x07); err != nil {
		return nil, err
	}
	if bb.AssetTag, err = s.stringAt(0x08); err != nil {
		return nil, err
	}

	if v, ok := s.u8(0x09); ok {
		bb.FeatureFlags = BaseBoardFlags(v)
	}
	if bb.LocationInChassis, err = s.stringAt(0x0A); err != nil {
		return nil, err
	}
	bb.ChassisHandle, _ = s.u16(0x0B)
	if v, ok := s.u8(0x0D); ok {
		bb.BoardType = BoardType(v)
	}

	return bb, nil
}
