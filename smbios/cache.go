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

// A Cache is a decoded Cache Information structure (type 7).
type Cache struct {
	Handle            uint16
	SocketDesignation string

	// Configuration packs the cache level (bits 0-2), socketed flag
	// (bit 3), location (bits 5-6), enabled flag (bit 7), and operational
	// mode (bits 8-9).
	Configuration uint16

	MaximumSize       uint16
	InstalledSize     uint16
	SupportedSRAMType uint16
	CurrentSRAMType   uint16

	// SMBIOS 2.1+ fields.
	Speed               *uint8
	ErrorCorrectionType *uint8
	SystemCacheType     *uint8
	Associativity       *uint8

	// SMBIOS 3.1+ fields, carrying sizes too large for the 16-bit fields.
	MaximumSize2   *uint32
	InstalledSize2 *uint32
}

// InfoType implements Record.
func (*Cache) InfoType() InfoType { return TypeCache }

// Level returns the 1-based cache level encoded in Configuration.
func (c *Cache) Level() int { return int(c.Configuration&0x07) + 1 }

// Enabled reports whether the cache is enabled at boot time.
func (c *Cache) Enabled() bool { return c.Configuration&0x80 != 0 }

// MaximumSizeBytes resolves the granularity bit of the maximum size field,
// preferring the 3.1 wide field when present.
func (c *Cache) MaximumSizeBytes() uint64 {
	if c.MaximumSize2 != nil {
		return cacheSize2Bytes(*c.MaximumSize2)
	}
	return cacheSizeBytes(c.MaximumSize)
}

// InstalledSizeBytes resolves the granularity bit of the installed size
// field, preferring the 3.1 wide field when present.
func (c *Cache) InstalledSizeBytes() uint64 {
	if c.InstalledSize2 != nil {
		return cacheSize2Bytes(*c.InstalledSize2)
	}
	return cacheSizeBytes(c.InstalledSize)
}

// cacheSizeBytes decodes a 16-bit cache size field: bit 15 selects 64K
// granularity over 1K granularity.
func cacheSizeBytes(raw uint16) uint64 {
	size := uint64(raw &^ 0x8000)
	if raw&0x8000 != 0 {
		return size * (64 << 10)
	}
	return size << 10
}

// cacheSize2Bytes decodes a 32-bit cache size field with the same
// granularity rule in bit 31.
func cacheSize2Bytes(raw uint32) uint64 {
	size := uint64(raw &^ 0x80000000)
	if raw&0x80000000 != 0 {
		return size * (64 << 10)
	}
	return size << 10
}

func decodeCache(s *Structure) (Record, error) {
	c := &Cache{Handle: s.Header.Handle}

	var err error
	if c.SocketDesignation, err = s.stringAt(0x04); err != nil {
		return nil, err
	}
	c.Configuration, _ = s.u16(0x05)
	c.MaximumSize, _ = s.u16(0x07)
	c.InstalledSize, _ = s.u16(0x09)
	c.SupportedSRAMType, _ = s.u16(0x0B)
	c.CurrentSRAMType, _ = s.u16(0x0D)

	c.Speed = s.optU8(0x0F)
	c.ErrorCorrectionType = s.optU8(0x10)
	c.SystemCacheType = s.optU8(0x11)
	c.Associativity = s.optU8(0x12)

	c.MaximumSize2 = s.optU32(0x13)
	c.InstalledSize2 = s.optU32(0x17)

	return c, nil
}
