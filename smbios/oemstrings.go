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

// An OEMStrings is a decoded OEM Strings structure (type 11): free-form
// strings defined by the OEM, such as part numbers or service contacts.
type OEMStrings struct {
	Handle uint16

	// Count is the declared number of strings; Strings holds the strings
	// actually present in the pool, transcribed verbatim.
	Count   uint8
	Strings []string
}

// InfoType implements Record.
func (*OEMStrings) InfoType() InfoType { return TypeOEMStrings }

func decodeOEMStrings(s *Structure) (Record, error) {
	o := &OEMStrings{
		Handle:  s.Header.Handle,
		Strings: s.Strings,
	}
	o.Count, _ = s.u8(0x04)

	return o, nil
}
