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

// Command lsdmi decodes and displays the SMBIOS structures contained in a
// raw firmware dump, such as one captured with "dmidecode --dump-bin".
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yywing/go-dmidecode/smbios"
)

func main() {
	var (
		dumpFile  = pflag.String("dump", "", "path to a raw SMBIOS dump (entry point followed by structure table)")
		tableFile = pflag.String("table", "", "optional path to a separate structure table dump")
	)
	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *dumpFile == "" {
		logger.Fatal("no dump file specified; use --dump")
	}

	dump, err := os.ReadFile(*dumpFile)
	if err != nil {
		logger.Fatal("failed to read dump", zap.Error(err))
	}

	ep, err := smbios.Search(dump)
	if err != nil {
		logger.Fatal("failed to locate SMBIOS entry point", zap.Error(err))
	}

	major, minor, rev := ep.Version()
	addr, size := ep.Table()
	fmt.Printf("SMBIOS %d.%d.%d - table: address: %#x, size: %d\n",
		major, minor, rev, addr, size)

	// In a combined dump the structure table lives at the address the entry
	// point declares, interpreted as an offset into the dump.
	tb := dump
	if *tableFile != "" {
		if tb, err = os.ReadFile(*tableFile); err != nil {
			logger.Fatal("failed to read table", zap.Error(err))
		}
	} else {
		if addr >= uint64(len(dump)) {
			logger.Fatal("structure table address outside dump",
				zap.Uint64("address", addr), zap.Int("dump_size", len(dump)))
		}
		tb = dump[addr:]
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Handle", "Type", "Name", "Summary"})

	iter := ep.Structures(tb)
	for {
		rec, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed structure spoils only itself; keep listing.
			logger.Warn("malformed structure", zap.Error(err))
			continue
		}

		t.AppendRow(table.Row{
			fmt.Sprintf("%#04x", handleOf(rec)),
			uint8(rec.InfoType()),
			rec.InfoType().String(),
			summarize(rec),
		})
	}

	t.Render()
}

// handleOf returns the structure handle of any decoded record.
func handleOf(rec smbios.Record) uint16 {
	switch r := rec.(type) {
	case *smbios.BIOSInformation:
		return r.Handle
	case *smbios.System:
		return r.Handle
	case *smbios.BaseBoard:
		return r.Handle
	case *smbios.Chassis:
		return r.Handle
	case *smbios.Processor:
		return r.Handle
	case *smbios.Cache:
		return r.Handle
	case *smbios.SystemSlot:
		return r.Handle
	case *smbios.OEMStrings:
		return r.Handle
	case *smbios.PhysicalMemoryArray:
		return r.Handle
	case *smbios.MemoryDevice:
		return r.Handle
	case *smbios.MemoryArrayMappedAddress:
		return r.Handle
	case *smbios.MemoryDeviceMappedAddress:
		return r.Handle
	case *smbios.SystemBoot:
		return r.Handle
	case *smbios.EndOfTable:
		return r.Handle
	case *smbios.Structure:
		return r.Header.Handle
	default:
		return 0
	}
}

// summarize renders a short human-oriented description of a record.
func summarize(rec smbios.Record) string {
	switch r := rec.(type) {
	case *smbios.BIOSInformation:
		return fmt.Sprintf("%s %s (%s)", r.Vendor, r.Version, r.ReleaseDate)
	case *smbios.System:
		return fmt.Sprintf("%s %s", r.Manufacturer, r.ProductName)
	case *smbios.BaseBoard:
		return fmt.Sprintf("%s %s (%s)", r.Manufacturer, r.Product, r.BoardType)
	case *smbios.Chassis:
		return fmt.Sprintf("%s %s", r.Manufacturer, r.Type)
	case *smbios.Processor:
		return fmt.Sprintf("%s: %s", r.SocketDesignation, r.Version)
	case *smbios.Cache:
		return fmt.Sprintf("%s: L%d, %d KB", r.SocketDesignation, r.Level(), r.InstalledSizeBytes()>>10)
	case *smbios.SystemSlot:
		return fmt.Sprintf("%s: %s", r.Designation, r.CurrentUsage)
	case *smbios.OEMStrings:
		return fmt.Sprintf("%d strings", len(r.Strings))
	case *smbios.PhysicalMemoryArray:
		return fmt.Sprintf("%s, %d devices", r.Location, r.NumberOfMemoryDevices)
	case *smbios.MemoryDevice:
		if r.Empty() {
			return fmt.Sprintf("%s: empty", r.DeviceLocator)
		}
		return fmt.Sprintf("%s: %d MB %s", r.DeviceLocator, r.SizeBytes()>>20, r.Type)
	case *smbios.Structure:
		return fmt.Sprintf("%d bytes, %d strings", len(r.Formatted), len(r.Strings))
	default:
		return ""
	}
}
