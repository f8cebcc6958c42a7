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

// A SystemBoot is a decoded System Boot Information structure (type 32).
type SystemBoot struct {
	Handle uint16

	// Status is the first boot status byte: 0 means no errors detected.
	// Detail carries the full status area including any vendor data.
	Status uint8
	Detail []byte
}

// InfoType implements Record.
func (*SystemBoot) InfoType() InfoType { return TypeSystemBoot }

func decodeSystemBoot(s *Structure) (Record, error) {
	b := &SystemBoot{Handle: s.Header.Handle}

	// Six reserved bytes precede the boot status area.
	b.Status, _ = s.u8(0x0A)
	if len(s.Formatted) > 6 {
		b.Detail = s.Formatted[6:]
	}

	return b, nil
}
