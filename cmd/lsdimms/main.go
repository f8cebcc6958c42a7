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

// Command lsdimms lists the memory devices found in a raw SMBIOS dump.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yywing/go-dmidecode/smbios"
)

func main() {
	dumpFile := pflag.String("dump", "", "path to a raw SMBIOS dump (entry point followed by structure table)")
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

	addr, _ := ep.Table()
	if addr >= uint64(len(dump)) {
		logger.Fatal("structure table address outside dump",
			zap.Uint64("address", addr), zap.Int("dump_size", len(dump)))
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Locator", "Bank", "Size", "Type", "Speed", "Manufacturer", "Serial"})

	var total uint64
	iter := ep.Structures(dump[addr:])
	for {
		rec, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn("malformed structure", zap.Error(err))
			continue
		}

		md, ok := rec.(*smbios.MemoryDevice)
		if !ok {
			continue
		}

		if md.Empty() {
			t.AppendRow(table.Row{md.DeviceLocator, md.BankLocator, "empty", "", "", "", ""})
			continue
		}

		size := md.SizeBytes()
		total += size

		var speed string
		if md.Speed != nil {
			speed = fmt.Sprintf("%d MT/s", *md.Speed)
		}

		t.AppendRow(table.Row{
			md.DeviceLocator,
			md.BankLocator,
			humanize.IBytes(size),
			md.Type.String(),
			speed,
			strOrEmpty(md.Manufacturer),
			strOrEmpty(md.SerialNumber),
		})
	}

	t.Render()
	fmt.Printf("total: %s\n", humanize.IBytes(total))
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
