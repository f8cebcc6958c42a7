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

// Package smbios decodes System Management BIOS (SMBIOS) and Desktop
// Management Interface (DMI) tables from raw byte buffers.
//
// The package performs no I/O and allocates no copies of table memory:
// callers supply the firmware buffers (from sysfs, /dev/mem captures,
// dmidecode dumps, or anywhere else), Search locates and validates the
// entry point within them, and the Structures iterator decodes the table
// one structure at a time. Malformed structures yield descriptive errors
// without aborting decoding of the rest of the table; the buffers are
// untrusted input and damage is expected, not exceptional.
package smbios
