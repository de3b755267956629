// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/typeddata"
)

type globalFlags struct {
	flagset *flag.FlagSet
	file    string
	format  string
	legacy  bool
	showSig bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"path to typed data document",
	)
	f.flagset.StringVar(
		&f.format,
		"format",
		"json",
		"document format (json or cbor)",
	)
	f.flagset.BoolVar(
		&f.legacy,
		"legacy",
		false,
		"use the legacy (v3) encoding rules",
	)
	f.flagset.BoolVar(
		&f.showSig,
		"signature",
		false,
		"also print the canonical type signature for the primary type",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.file == "" {
		fmt.Println("you must specify a document file with -file")
		os.Exit(1)
	}

	data, err := os.ReadFile(f.file)
	if err != nil {
		fmt.Printf("failed to read %s: %s\n", f.file, err)
		os.Exit(1)
	}

	var td *typeddata.TypedData
	switch f.format {
	case "json":
		td, err = typeddata.ParseJSON(data)
	case "cbor":
		td, err = typeddata.ParseCBOR(data)
	default:
		fmt.Printf("invalid format specified: %s\n", f.format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("failed to parse document: %s\n", err)
		os.Exit(1)
	}

	version := typeddata.VersionCurrent
	if f.legacy {
		version = typeddata.VersionLegacy
	}

	if f.showSig {
		fmt.Printf(
			"Type signature: %s\n",
			td.TypeSignature(td.PrimaryType),
		)
		fmt.Printf(
			"Type hash:      0x%s\n",
			td.TypeHash(td.PrimaryType),
		)
	}
	domainHash, err := td.DomainSeparator(version)
	if err != nil {
		fmt.Printf("failed to hash domain: %s\n", err)
		os.Exit(1)
	}
	messageHash, err := td.HashStruct(td.PrimaryType, td.Message, version)
	if err != nil {
		fmt.Printf("failed to hash message: %s\n", err)
		os.Exit(1)
	}
	signableHash, err := td.SignableHash(version)
	if err != nil {
		fmt.Printf("failed to compute signable hash: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Domain separator: 0x%s\n", domainHash)
	fmt.Printf("Message hash:     0x%s\n", messageHash)
	fmt.Printf("Signable hash:    0x%s\n", signableHash)
}
