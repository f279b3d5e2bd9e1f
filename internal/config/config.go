// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package config

import (
	"fmt"
	"time"

	"github.com/retr0h/envscope/internal/validation"
)

// Defaults applied by the root command before unmarshalling.
const (
	DefaultCacheTTL  = "30s"
	DefaultMaxPID    = int32(4194304)
	DefaultBatchSize = 50
)

// Validate checks the configuration against its schema.
func Validate(
	cfg *Config,
) error {
	if msg, ok := validation.Struct(cfg); !ok {
		return fmt.Errorf("invalid configuration: %s", msg)
	}

	if _, err := time.ParseDuration(cfg.Process.CacheTTL); err != nil {
		return fmt.Errorf("invalid process.cache_ttl: %w", err)
	}

	return nil
}

// CacheTTL returns the parsed process cache TTL. Validate must have
// succeeded first.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Process.CacheTTL)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
