// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// proto-dump renders the sample address-book messages with the text
// printer, mainly as a smoke check for the printing pipeline and an
// example of wiring the printer config from a toml file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/matrixorigin/nanotext/pkg/logutil"
	"github.com/matrixorigin/nanotext/pkg/nanopb"
	"github.com/matrixorigin/nanotext/pkg/pb/person"
	"github.com/matrixorigin/nanotext/pkg/textprint"
)

var (
	configFile = flag.String("config", "", "toml file overriding the printed format")
	logLevel   = flag.String("log-level", "info", "zap log level")
	logFile    = flag.String("log-file", "", "log destination, stderr when empty")
)

func sampleMessages() []nanopb.Message {
	email := "alice@example.com"
	alice := &person.Person{
		Name:  "alice",
		Id:    1,
		Email: &email,
		Phones: []*person.PhoneNumber{
			{Number: "555-0100", Type: person.PhoneTypeMobile},
			{Number: "555-0101", Type: person.PhoneTypeWork},
		},
		Key: []byte{0xde, 0xad, 0xbe, 0xef},
	}
	book := &person.AddressBook{
		Owner:   alice,
		People:  []*person.Person{{Name: "bob", Id: 2}},
		Tags:    []string{"sample", "demo"},
		HomeUrl: "http://example.com/addressbook",
	}
	return []nanopb.Message{alice, book}
}

func main() {
	flag.Parse()
	logutil.SetupLogger(&logutil.LogConfig{
		Level:    *logLevel,
		Filename: *logFile,
	})

	var cfg textprint.Config
	if *configFile != "" {
		if err := textprint.LoadConfigFromFile(*configFile, &cfg); err != nil {
			logutil.Errorf("load config %s: %v", *configFile, err)
			os.Exit(-1)
		}
	}

	printer := textprint.NewPrinter(cfg)
	out, err := printer.PrintAll(context.Background(), sampleMessages(), 0)
	if err != nil {
		logutil.Errorf("render samples: %v", err)
		os.Exit(-1)
	}
	for i, text := range out {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(text)
	}
}
