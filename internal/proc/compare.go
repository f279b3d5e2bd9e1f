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

package proc

import (
	"sort"

	"github.com/retr0h/envscope/internal/env"
)

// Comparison relates one managed system variable to its presence in a
// process environment.
type Comparison struct {
	// VariableName is the system variable name.
	VariableName string `json:"variable_name"`
	// SystemValue is the managed system-scope value.
	SystemValue string `json:"system_value"`
	// ProcessValue is the value in the process, nil when absent.
	ProcessValue *string `json:"process_value,omitempty"`
	// Inherited reports the name being present in the process.
	Inherited bool `json:"inherited"`
	// MatchesSystem reports the process value equaling the system value.
	MatchesSystem bool `json:"matches_system"`
}

// CompareWithSystem relates each managed system variable to the
// process environment: a variable absent from the process is excluded,
// a present one is inherited, and it matches only on exact value
// equality. Results are sorted by name.
func CompareWithSystem(
	environment Environment,
	sysVars []*env.Variable,
) []Comparison {
	comparisons := make([]Comparison, 0, len(sysVars))
	for _, v := range sysVars {
		processValue, ok := environment.Get(v.Name)
		if !ok {
			continue
		}

		value := processValue
		comparisons = append(comparisons, Comparison{
			VariableName:  v.Name,
			SystemValue:   v.Value,
			ProcessValue:  &value,
			Inherited:     true,
			MatchesSystem: processValue == v.Value,
		})
	}

	sort.Slice(comparisons, func(i, j int) bool {
		return comparisons[i].VariableName < comparisons[j].VariableName
	})

	return comparisons
}

// ProcessSpecific returns the names present in the process environment
// but absent from the managed system variables, sorted. Exact name
// set difference, values play no part.
func ProcessSpecific(
	environment Environment,
	sysVars []*env.Variable,
) []string {
	managed := make(map[string]struct{}, len(sysVars))
	for _, v := range sysVars {
		managed[v.Name] = struct{}{}
	}

	names := make([]string, 0)
	for name := range environment.Variables {
		if _, ok := managed[name]; !ok {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
