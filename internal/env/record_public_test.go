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

package env_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/env"
)

type RecordTestSuite struct {
	suite.Suite
}

func TestRecordTestSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func (suite *RecordTestSuite) TestRoundTrip() {
	v, _, err := env.NewVariable("MY_APP_HOME", "/opt/my-app", env.ScopeUser)
	suite.Require().NoError(err)

	data, err := json.Marshal(v.ToRecord())
	suite.Require().NoError(err)

	var got env.Record
	suite.Require().NoError(json.Unmarshal(data, &got))

	restored, err := env.FromRecord(got)
	suite.Require().NoError(err)

	suite.Equal(v.ID, restored.ID)
	suite.Equal(v.Name, restored.Name)
	suite.Equal(v.Value, restored.Value)
	suite.Equal(v.Scope, restored.Scope)
	suite.True(v.CreatedAt.Equal(restored.CreatedAt))
	suite.True(v.UpdatedAt.Equal(restored.UpdatedAt))
}

func (suite *RecordTestSuite) TestFromRecord() {
	tests := []struct {
		name    string
		record  env.Record
		wantErr error
	}{
		{
			name: "when record is valid succeeds",
			record: env.Record{
				ID:    "abc-123",
				Name:  "MY_VAR",
				Value: "x",
				Scope: "user",
			},
		},
		{
			name: "when id is missing fails",
			record: env.Record{
				Name:  "MY_VAR",
				Value: "x",
				Scope: "user",
			},
			wantErr: env.ErrInvalid,
		},
		{
			name: "when scope is unknown fails",
			record: env.Record{
				ID:    "abc-123",
				Name:  "MY_VAR",
				Value: "x",
				Scope: "global",
			},
			wantErr: env.ErrInvalid,
		},
		{
			name: "when system record has empty value fails",
			record: env.Record{
				ID:    "abc-123",
				Name:  "MY_VAR",
				Scope: "system",
			},
			wantErr: env.ErrInvalid,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			v, err := env.FromRecord(tc.record)
			if tc.wantErr != nil {
				suite.ErrorIs(err, tc.wantErr)
				suite.Nil(v)
				return
			}

			suite.NoError(err)
			suite.Equal(tc.record.ID, v.ID)
		})
	}
}
