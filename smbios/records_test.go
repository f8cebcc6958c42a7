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

package smbios_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yywing/go-dmidecode/smbios"
)

func ptr[T any](v T) *T { return &v }

// decodeOne decodes a single structure under the given SMBIOS version.
func decodeOne(t *testing.T, major, minor int, structure []byte) smbios.Record {
	t.Helper()

	ep := &smbios.EntryPoint64Bit{
		Major:                 uint8(major),
		Minor:                 uint8(minor),
		StructureTableMaxSize: uint32(len(structure)),
	}

	rec, err := ep.Structures(structure).Next()
	require.NoError(t, err)
	return rec
}

func TestDecodeBIOSInformation(t *testing.T) {
	rec := decodeOne(t, 3, 1, structBytes(
		0x00, 0x0001,
		[]byte{
			0x01,       // vendor
			0x02,       // version
			0x00, 0xE8, // starting address segment
			0x03,                                           // release date
			0xFF,                                           // ROM size, deferred to extended field
			0x80, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // characteristics
			0x01,       // extension byte 1
			0x08,       // extension byte 2
			0x01, 0x16, // BIOS release 1.22
			0xFF, 0xFF, // EC release unsupported
			0x20, 0x00, // extended ROM size, 32 MB
		},
		"American Megatrends Inc.", "1.22", "12/01/2023",
	))

	want := &smbios.BIOSInformation{
		Handle:                 0x0001,
		Vendor:                 "American Megatrends Inc.",
		Version:                "1.22",
		StartingAddressSegment: 0xE800,
		ReleaseDate:            "12/01/2023",
		ROMSize:                0xFF,
		Characteristics:        smbios.BIOSCharacteristicsPCI | smbios.BIOSCharacteristicsPlugAndPlay,
		CharacteristicsExt1:    ptr(smbios.BIOSExtACPI),
		CharacteristicsExt2:    ptr(smbios.BIOSExtUEFI),
		BIOSMajorRelease:       ptr(uint8(1)),
		BIOSMinorRelease:       ptr(uint8(22)),
		ECFirmwareMajorRelease: ptr(uint8(0xFF)),
		ECFirmwareMinorRelease: ptr(uint8(0xFF)),
		ExtendedROMSize:        ptr(uint16(0x0020)),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}

	if size := want.ROMSizeBytes(); size != 32<<20 {
		t.Fatalf("unexpected ROM size: %d", size)
	}
}

func TestDecodeBIOSInformationLegacyLength(t *testing.T) {
	// A 2.0-era structure stops after the characteristics field; everything
	// version-gated must come back absent, not zero.
	rec := decodeOne(t, 2, 0, structBytes(
		0x00, 0x0001,
		[]byte{
			0x01,
			0x02,
			0x00, 0xE8,
			0x03,
			0x0F,
			0x90, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		},
		"Phoenix", "4.0 Release 6.0", "01/01/1999",
	))

	bios, ok := rec.(*smbios.BIOSInformation)
	require.True(t, ok, "expected BIOS information, got: %#v", rec)

	require.Nil(t, bios.CharacteristicsExt1)
	require.Nil(t, bios.BIOSMajorRelease)
	require.Nil(t, bios.ExtendedROMSize)

	if size := bios.ROMSizeBytes(); size != 1<<20 {
		t.Fatalf("unexpected ROM size: %d", size)
	}
}

func TestDecodeSystem(t *testing.T) {
	uuidBytes := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}

	formatted := append([]byte{0x01, 0x02, 0x03, 0x04}, uuidBytes...)
	formatted = append(formatted,
		0x06, // wake-up: power switch
		0x05, // SKU number
		0x06, // family
	)

	structure := structBytes(
		0x01, 0x0002,
		formatted,
		"Dell Inc.", "PowerEdge R640", "1.0", "ABCDEF0", "SKU=0714", "PowerEdge",
	)

	tests := []struct {
		name         string
		major, minor int
		uuid         string
	}{
		{
			// The first three UUID fields flip to little-endian in 2.6.
			name:  "2.6+ little-endian UUID",
			major: 2, minor: 8,
			uuid: "33221100-5544-7766-8899-aabbccddeeff",
		},
		{
			name:  "pre-2.6 network-order UUID",
			major: 2, minor: 1,
			uuid: "00112233-4455-6677-8899-aabbccddeeff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decodeOne(t, tt.major, tt.minor, structure)

			want := &smbios.System{
				Handle:       0x0002,
				Manufacturer: "Dell Inc.",
				ProductName:  "PowerEdge R640",
				Version:      "1.0",
				SerialNumber: "ABCDEF0",
				UUID:         ptr(uuid.MustParse(tt.uuid)),
				WakeUp:       ptr(smbios.WakeUpPowerSwitch),
				SKUNumber:    ptr("SKU=0714"),
				Family:       ptr("PowerEdge"),
			}
			if diff := cmp.Diff(want, rec); diff != "" {
				t.Fatalf("unexpected record (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSystemLegacyLength(t *testing.T) {
	rec := decodeOne(t, 2, 0, structBytes(
		0x01, 0x0002,
		[]byte{0x01, 0x02, 0x00, 0x00},
		"QEMU", "Standard PC",
	))

	want := &smbios.System{
		Handle:       0x0002,
		Manufacturer: "QEMU",
		ProductName:  "Standard PC",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestDecodeBaseBoard(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x02, 0x0003,
		[]byte{
			0x01, 0x02, 0x03, 0x04, 0x05,
			0x09, // hosting board, replaceable
			0x06,
			0x00, 0x03, // chassis handle
			0x0A, // motherboard
		},
		"Supermicro", "X11DPi-N", "1.02", "ZM191S001122", "To be filled", "Slot 1",
	))

	want := &smbios.BaseBoard{
		Handle:            0x0003,
		Manufacturer:      "Supermicro",
		Product:           "X11DPi-N",
		Version:           "1.02",
		SerialNumber:      "ZM191S001122",
		AssetTag:          "To be filled",
		FeatureFlags:      smbios.BaseBoardHostingBoard | smbios.BaseBoardReplaceable,
		LocationInChassis: "Slot 1",
		ChassisHandle:     0x0300,
		BoardType:         smbios.BoardTypeMotherboard,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestDecodeChassis(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x03, 0x0004,
		[]byte{
			0x01,
			0x97, // locked rack mount chassis
			0x02, 0x03, 0x04,
			0x03, 0x03, 0x03, // boot-up, power supply, thermal: safe
			0x03,                   // security: none
			0xEF, 0xBE, 0xAD, 0xDE, // OEM-defined
			0x02,       // height, 2U
			0x02,       // power cords
			0x02, 0x03, // two contained elements of three bytes
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
			0x05, // SKU number, past the contained elements
		},
		"HPE", "P01234-B21", "CZJ1234XYZ", "AT-1", "R2D2",
	))

	want := &smbios.Chassis{
		Handle:                       0x0004,
		Manufacturer:                 "HPE",
		Type:                         smbios.ChassisTypeRackMountChassis,
		Lock:                         true,
		Version:                      "P01234-B21",
		SerialNumber:                 "CZJ1234XYZ",
		AssetTag:                     "AT-1",
		BootUpState:                  ptr(smbios.ChassisStateSafe),
		PowerSupplyState:             ptr(smbios.ChassisStateSafe),
		ThermalState:                 ptr(smbios.ChassisStateSafe),
		SecurityStatus:               ptr(smbios.ChassisSecurityNone),
		OEMDefined:                   ptr(uint32(0xDEADBEEF)),
		Height:                       ptr(uint8(2)),
		NumberOfPowerCords:           ptr(uint8(2)),
		ContainedElementCount:        ptr(uint8(2)),
		ContainedElementRecordLength: ptr(uint8(3)),
		ContainedElements:            []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		SKUNumber:                    ptr("R2D2"),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestDecodeProcessor(t *testing.T) {
	rec := decodeOne(t, 3, 0, structBytes(
		0x04, 0x0005,
		[]byte{
			0x01,                                           // socket designation
			0x03,                                           // central processor
			0xFE,                                           // family, deferred to wide field
			0x02,                                           // manufacturer
			0xA9, 0x06, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, // ID
			0x03,       // version
			0x8B,       // voltage
			0x64, 0x00, // external clock, 100 MHz
			0x5C, 0x12, // max speed, 4700 MHz
			0xAC, 0x0D, // current speed, 3500 MHz
			0x41,       // populated, enabled
			0x01,       // upgrade
			0x01, 0x07, // L1 cache handle
			0x02, 0x07, // L2 cache handle
			0x03, 0x07, // L3 cache handle
			0x04,             // serial number
			0x00,             // asset tag, not specified
			0x05,             // part number
			0xFF, 0xFF, 0xFF, // narrow counts saturated
			0x7C, 0x00, // characteristics
			0x00, 0x02, // family 2
			0x80, 0x01, 0x80, 0x01, // 384 cores, 384 enabled
			0x00, 0x03, // 768 threads
		},
		"CPU0", "Advanced Micro Devices, Inc.", "AMD EPYC 9965", "2B47XYZ", "100-000001234",
	))

	want := &smbios.Processor{
		Handle:            0x0005,
		SocketDesignation: "CPU0",
		Type:              smbios.ProcessorTypeCentralProcessor,
		Family:            0x0200,
		Manufacturer:      "Advanced Micro Devices, Inc.",
		ID:                0x000306A9,
		Version:           "AMD EPYC 9965",
		Voltage:           0x8B,
		ExternalClock:     100,
		MaxSpeed:          4700,
		CurrentSpeed:      3500,
		Status:            smbios.ProcessorStatus(0x41),
		Upgrade:           0x01,
		L1CacheHandle:     ptr(uint16(0x0701)),
		L2CacheHandle:     ptr(uint16(0x0702)),
		L3CacheHandle:     ptr(uint16(0x0703)),
		SerialNumber:      ptr("2B47XYZ"),
		AssetTag:          ptr(""),
		PartNumber:        ptr("100-000001234"),
		CoreCount:         ptr(uint16(384)),
		CoreEnabled:       ptr(uint16(384)),
		ThreadCount:       ptr(uint16(768)),
		Characteristics: ptr(smbios.Processor64BitCapable |
			smbios.ProcessorMultiCore |
			smbios.ProcessorHardwareThread |
			smbios.ProcessorExecuteProtection |
			smbios.ProcessorEnhancedVirtualization),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}

	if !want.Status.SocketPopulated() {
		t.Fatal("expected a populated socket")
	}
	if st := want.Status.CPUStatus(); st != 1 {
		t.Fatalf("unexpected CPU status: %d", st)
	}
}

func TestDecodeProcessorNarrowCounts(t *testing.T) {
	// A 2.5-era structure stops before the wide count fields: the one-byte
	// counts must stand.
	rec := decodeOne(t, 2, 5, structBytes(
		0x04, 0x0005,
		[]byte{
			0x01,
			0x03,
			0xB3, // family
			0x02,
			0xA9, 0x06, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x03,
			0x8B,
			0x64, 0x00,
			0x5C, 0x12,
			0xAC, 0x0D,
			0x41,
			0x01,
			0x01, 0x07,
			0x02, 0x07,
			0x03, 0x07,
			0x00, 0x00, 0x00,
			0x08, 0x08, 0x10, // 8 cores, 8 enabled, 16 threads
		},
		"CPU0", "Intel(R) Corporation", "Intel(R) Xeon(R)",
	))

	p, ok := rec.(*smbios.Processor)
	require.True(t, ok, "expected a processor, got: %#v", rec)

	if p.Family != 0xB3 {
		t.Fatalf("unexpected family: %#x", p.Family)
	}
	if diff := cmp.Diff(ptr(uint16(8)), p.CoreCount); diff != "" {
		t.Fatalf("unexpected core count (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ptr(uint16(16)), p.ThreadCount); diff != "" {
		t.Fatalf("unexpected thread count (-want +got):\n%s", diff)
	}
	require.Nil(t, p.Characteristics)
}

func TestDecodeCache(t *testing.T) {
	rec := decodeOne(t, 3, 1, structBytes(
		0x07, 0x0703,
		[]byte{
			0x01,       // socket designation
			0x82, 0x01, // L3, enabled, write-back
			0x00, 0x40, // maximum size, 16 MB in 1K granularity
			0x00, 0x40, // installed size
			0x20, 0x00, // supported SRAM type
			0x20, 0x00, // current SRAM type
			0x01,                   // speed
			0x05,                   // single-bit ECC
			0x05,                   // unified
			0x09,                   // 32-way set-associative
			0x00, 0x04, 0x00, 0x80, // maximum size 2, 64 MB in 64K granularity
			0x00, 0x04, 0x00, 0x80, // installed size 2
		},
		"L3 Cache",
	))

	c, ok := rec.(*smbios.Cache)
	require.True(t, ok, "expected a cache, got: %#v", rec)

	if c.SocketDesignation != "L3 Cache" {
		t.Fatalf("unexpected socket designation: %q", c.SocketDesignation)
	}
	if c.Level() != 3 {
		t.Fatalf("unexpected level: %d", c.Level())
	}
	if !c.Enabled() {
		t.Fatal("expected an enabled cache")
	}

	// The wide fields take precedence over the 16-bit ones.
	if size := c.MaximumSizeBytes(); size != 64<<20 {
		t.Fatalf("unexpected maximum size: %d", size)
	}
	if size := c.InstalledSizeBytes(); size != 64<<20 {
		t.Fatalf("unexpected installed size: %d", size)
	}
}

func TestCacheSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		c    smbios.Cache
		want uint64
	}{
		{
			name: "1K granularity",
			c:    smbios.Cache{MaximumSize: 0x4000},
			want: 16 << 20,
		},
		{
			name: "64K granularity",
			c:    smbios.Cache{MaximumSize: 0x8010},
			want: 1 << 20,
		},
		{
			name: "wide field, 64K granularity",
			c: smbios.Cache{
				MaximumSize:  0xFFFF,
				MaximumSize2: ptr(uint32(0x80001000)),
			},
			want: 256 << 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if size := tt.c.MaximumSizeBytes(); size != tt.want {
				t.Fatalf("unexpected size:\n- want: %d\n-  got: %d", tt.want, size)
			}
		})
	}
}

func TestDecodeSystemSlot(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x09, 0x0009,
		[]byte{
			0x01,       // designation
			0xA5,       // PCI Express
			0x0D,       // x16
			0x04,       // in use
			0x04,       // long length
			0x01, 0x00, // slot ID
			0x0C,       // characteristics 1
			0x01,       // characteristics 2
			0x00, 0x00, // segment group
			0x3B, // bus
			0x30, // device 6, function 0
		},
		"PCIe Slot 1",
	))

	want := &smbios.SystemSlot{
		Handle:               0x0009,
		Designation:          "PCIe Slot 1",
		Type:                 0xA5,
		DataBusWidth:         0x0D,
		CurrentUsage:         smbios.SlotUsageInUse,
		Length:               0x04,
		ID:                   0x0001,
		Characteristics1:     0x0C,
		Characteristics2:     ptr(uint8(0x01)),
		SegmentGroupNumber:   ptr(uint16(0)),
		BusNumber:            ptr(uint8(0x3B)),
		DeviceFunctionNumber: ptr(uint8(0x30)),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestDecodeOEMStrings(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x0B, 0x000B,
		[]byte{0x03},
		"Default string", "SKU=NotProvided", "asset-42",
	))

	want := &smbios.OEMStrings{
		Handle:  0x000B,
		Count:   3,
		Strings: []string{"Default string", "SKU=NotProvided", "asset-42"},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestDecodePhysicalMemoryArray(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x10, 0x0010,
		[]byte{
			0x03,                   // system board
			0x03,                   // system memory
			0x03,                   // no ECC
			0x00, 0x00, 0x00, 0x80, // capacity, deferred to extended field
			0xFE, 0xFF, // no error information
			0x04, 0x00, // four devices
			0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, // 128 GiB
		},
	))

	want := &smbios.PhysicalMemoryArray{
		Handle:                  0x0010,
		Location:                smbios.MemoryArrayLocationSystemBoard,
		Use:                     smbios.MemoryArrayUseSystemMemory,
		ErrorCorrection:         0x03,
		MaximumCapacity:         0x80000000,
		ErrorInformationHandle:  0xFFFE,
		NumberOfMemoryDevices:   4,
		ExtendedMaximumCapacity: ptr(uint64(128 << 30)),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}

	if size := want.MaximumCapacityBytes(); size != 128<<30 {
		t.Fatalf("unexpected maximum capacity: %d", size)
	}
}

func TestDecodeMemoryDevice(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x11, 0x0011,
		[]byte{
			0x10, 0x00, // array handle
			0xFE, 0xFF, // no error information
			0x48, 0x00, // total width, 72 bits
			0x40, 0x00, // data width, 64 bits
			0x00, 0x40, // size, 16384 MB
			0x09,       // DIMM
			0x00,       // device set
			0x01,       // device locator
			0x02,       // bank locator
			0x1A,       // DDR4
			0x80, 0x00, // synchronous
			0x60, 0x09, // speed, 2400 MT/s
			0x03, 0x04, 0x05, 0x06, // manufacturer, serial, asset, part
			0x01,                   // one rank
			0x00, 0x00, 0x00, 0x00, // extended size
			0x55, 0x08, // configured speed, 2133 MT/s
			0x74, 0x04, // minimum voltage, 1140 mV
			0xEC, 0x04, // maximum voltage, 1260 mV
			0xB0, 0x04, // configured voltage, 1200 mV
		},
		"DIMM_A1", "BANK 0", "Samsung", "40E1D2FA", "A1", "M393A2G40EB1-CRC",
	))

	want := &smbios.MemoryDevice{
		Handle:                 0x0011,
		ArrayHandle:            0x0010,
		ErrorInformationHandle: 0xFFFE,
		TotalWidth:             72,
		DataWidth:              64,
		Size:                   0x4000,
		FormFactor:             smbios.MemoryFormFactorDIMM,
		DeviceLocator:          "DIMM_A1",
		BankLocator:            "BANK 0",
		Type:                   smbios.MemoryDeviceTypeDDR4,
		TypeDetail:             0x0080,
		Speed:                  ptr(uint16(2400)),
		Manufacturer:           ptr("Samsung"),
		SerialNumber:           ptr("40E1D2FA"),
		AssetTag:               ptr("A1"),
		PartNumber:             ptr("M393A2G40EB1-CRC"),
		Attributes:             ptr(uint8(0x01)),
		ExtendedSize:           ptr(uint32(0)),
		ConfiguredSpeed:        ptr(uint16(2133)),
		MinimumVoltage:         ptr(uint16(1140)),
		MaximumVoltage:         ptr(uint16(1260)),
		ConfiguredVoltage:      ptr(uint16(1200)),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}

	if want.Empty() {
		t.Fatal("expected a populated device")
	}
	if size := want.SizeBytes(); size != 16<<30 {
		t.Fatalf("unexpected size: %d", size)
	}
}

func TestDecodeMemoryDeviceEmptySocket(t *testing.T) {
	rec := decodeOne(t, 2, 1, structBytes(
		0x11, 0x0012,
		[]byte{
			0x10, 0x00,
			0xFE, 0xFF,
			0x00, 0x00,
			0x00, 0x00,
			0x00, 0x00, // empty socket
			0x09,
			0x00,
			0x01,
			0x02,
			0x02, // unknown type
			0x00, 0x00,
		},
		"DIMM_B2", "BANK 1",
	))

	md, ok := rec.(*smbios.MemoryDevice)
	require.True(t, ok, "expected a memory device, got: %#v", rec)

	if !md.Empty() {
		t.Fatal("expected an empty socket")
	}
	if size := md.SizeBytes(); size != 0 {
		t.Fatalf("unexpected size: %d", size)
	}
	require.Nil(t, md.Speed)
}

func TestMemoryDeviceSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		md   smbios.MemoryDevice
		want uint64
	}{
		{
			name: "empty socket",
			md:   smbios.MemoryDevice{Size: 0},
		},
		{
			name: "unknown size",
			md:   smbios.MemoryDevice{Size: 0xFFFF},
		},
		{
			name: "megabyte granularity",
			md:   smbios.MemoryDevice{Size: 0x2000},
			want: 8 << 30,
		},
		{
			name: "kilobyte granularity",
			md:   smbios.MemoryDevice{Size: 0x8400},
			want: 1 << 20,
		},
		{
			name: "extended size",
			md: smbios.MemoryDevice{
				Size:         0x7FFF,
				ExtendedSize: ptr(uint32(0x00008000)),
			},
			want: 32 << 30,
		},
		{
			name: "extended size missing",
			md:   smbios.MemoryDevice{Size: 0x7FFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if size := tt.md.SizeBytes(); size != tt.want {
				t.Fatalf("unexpected size:\n- want: %d\n-  got: %d", tt.want, size)
			}
		})
	}
}

func TestDecodeMemoryArrayMappedAddress(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x13, 0x0013,
		[]byte{
			0xFF, 0xFF, 0xFF, 0xFF, // start, deferred to extended field
			0xFF, 0xFF, 0xFF, 0xFF, // end, deferred to extended field
			0x10, 0x00, // memory array handle
			0x01, // partition width
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0xFF, 0xFF, 0xFF, 0xFF, 0x1F, 0x00, 0x00, 0x00,
		},
	))

	want := &smbios.MemoryArrayMappedAddress{
		Handle:                  0x0013,
		StartingAddress:         0xFFFFFFFF,
		EndingAddress:           0xFFFFFFFF,
		MemoryArrayHandle:       0x0010,
		PartitionWidth:          1,
		ExtendedStartingAddress: ptr(uint64(0)),
		ExtendedEndingAddress:   ptr(uint64(0x1FFFFFFFFF)),
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestDecodeMemoryDeviceMappedAddress(t *testing.T) {
	rec := decodeOne(t, 2, 1, structBytes(
		0x14, 0x0014,
		[]byte{
			0x00, 0x00, 0x00, 0x00, // start
			0xFF, 0xFF, 0xFF, 0x00, // end
			0x11, 0x00, // memory device handle
			0x13, 0x00, // memory array mapped address handle
			0xFF, // partition row position unknown
			0x00, // interleave position
			0x00, // interleaved data depth
		},
	))

	want := &smbios.MemoryDeviceMappedAddress{
		Handle:                         0x0014,
		EndingAddress:                  0x00FFFFFF,
		MemoryDeviceHandle:             0x0011,
		MemoryArrayMappedAddressHandle: 0x0013,
		PartitionRowPosition:           0xFF,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestDecodeSystemBoot(t *testing.T) {
	rec := decodeOne(t, 2, 8, structBytes(
		0x20, 0x0020,
		[]byte{
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // reserved
			0x04, 0xAA, 0xBB, // status and vendor data
		},
	))

	want := &smbios.SystemBoot{
		Handle: 0x0020,
		Status: 0x04,
		Detail: []byte{0x04, 0xAA, 0xBB},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}
