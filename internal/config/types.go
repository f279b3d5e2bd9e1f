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

// Package config holds the YAML configuration schema.
package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	Process Process `mapstructure:"process"`
	Export  Export  `mapstructure:"export"`
	// User identifies the actor recorded on audit entries. Defaults to the
	// current OS user when empty.
	User string `mapstructure:"user"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Process configuration settings for process inspection.
type Process struct {
	// CacheTTL is how long a full process enumeration stays fresh,
	// e.g. "30s", "1m".
	CacheTTL string `mapstructure:"cache_ttl" validate:"required"`
	// MaxPID is the upper bound of the platform PID range. Processes
	// reporting PIDs outside [1, MaxPID] are skipped.
	MaxPID int32 `mapstructure:"max_pid"   validate:"gt=0"`
}

// Export configuration settings for audit and data export.
type Export struct {
	// BatchSize is the page size used when draining the audit store.
	BatchSize int `mapstructure:"batch_size" validate:"gt=0"`
}
