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

package textprint

import (
	"context"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/nanotext/pkg/common/moerr"
)

const (
	defaultIndent           = "  "
	defaultMaxStringLen     = 200
	defaultTruncationMarker = "[...]"
)

// defaultNoTruncatePrefixes exempts likely URLs from truncation, a
// heuristic kept from the original printer.
var defaultNoTruncatePrefixes = []string{"http"}

// Config controls the rendered text.  The zero Config renders the
// historical fixed format: two-space indent, strings capped at 200
// runes with an "[...]" marker, URLs exempt from the cap.
type Config struct {
	// Indent is the per-level indentation unit.
	Indent string `toml:"indent"`

	// MaxStringLen caps string leaves, counted in runes.
	MaxStringLen int `toml:"max-string-len"`

	// TruncationMarker is appended to a capped string.
	TruncationMarker string `toml:"truncation-marker"`

	// NoTruncatePrefixes lists prefixes whose strings are never
	// capped.
	NoTruncatePrefixes []string `toml:"no-truncate-prefixes"`
}

func (c *Config) fillDefaults() {
	if c.Indent == "" {
		c.Indent = defaultIndent
	}
	if c.MaxStringLen <= 0 {
		c.MaxStringLen = defaultMaxStringLen
	}
	if c.TruncationMarker == "" {
		c.TruncationMarker = defaultTruncationMarker
	}
	if c.NoTruncatePrefixes == nil {
		c.NoTruncatePrefixes = defaultNoTruncatePrefixes
	}
}

// LoadConfigFromFile fills cfg from a toml file, then applies the
// defaults to whatever the file left unset.
func LoadConfigFromFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return moerr.NewBadConfig(context.TODO(), "%s: %v", path, err)
	}
	cfg.fillDefaults()
	return nil
}
