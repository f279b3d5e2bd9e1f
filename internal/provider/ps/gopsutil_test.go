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

package ps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
	"testing"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/suite"
)

type GopsutilSourceTestSuite struct {
	suite.Suite

	ctx    context.Context
	source *GopsutilSource
}

func TestGopsutilSourceTestSuite(t *testing.T) {
	suite.Run(t, new(GopsutilSourceTestSuite))
}

func (suite *GopsutilSourceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.source = NewGopsutilSource(
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (suite *GopsutilSourceTestSuite) TearDownTest() {
	pidsFn = process.PidsWithContext
	pidExistsFn = process.PidExistsWithContext
}

func (suite *GopsutilSourceTestSuite) TestPids() {
	suite.Run("when enumeration succeeds returns pids", func() {
		pidsFn = func(_ context.Context) ([]int32, error) {
			return []int32{1, 42}, nil
		}

		pids, err := suite.source.Pids(suite.ctx)
		suite.NoError(err)
		suite.Equal([]int32{1, 42}, pids)
	})

	suite.Run("when enumeration fails wraps the error", func() {
		pidsFn = func(_ context.Context) ([]int32, error) {
			return nil, fmt.Errorf("proc unavailable")
		}

		_, err := suite.source.Pids(suite.ctx)
		suite.ErrorContains(err, "listing pids")
	})
}

func (suite *GopsutilSourceTestSuite) TestExists() {
	pidExistsFn = func(_ context.Context, pid int32) (bool, error) {
		return pid == 42, nil
	}

	exists, err := suite.source.Exists(suite.ctx, 42)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.source.Exists(suite.ctx, 7)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *GopsutilSourceTestSuite) TestClassify() {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "when process is not running maps to ErrNotRunning",
			err:  process.ErrorProcessNotRunning,
			want: ErrNotRunning,
		},
		{
			name: "when syscall reports no such process maps to ErrNotRunning",
			err:  syscall.ESRCH,
			want: ErrNotRunning,
		},
		{
			name: "when permission is denied maps to ErrAccessDenied",
			err:  os.ErrPermission,
			want: ErrAccessDenied,
		},
		{
			name: "when syscall reports EPERM maps to ErrAccessDenied",
			err:  syscall.EPERM,
			want: ErrAccessDenied,
		},
		{
			name: "when syscall reports EACCES maps to ErrAccessDenied",
			err:  syscall.EACCES,
			want: ErrAccessDenied,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.ErrorIs(classify(42, tc.err), tc.want)
		})
	}

	suite.Run("when the error is unrecognized passes it through", func() {
		cause := fmt.Errorf("weird kernel state")
		got := classify(42, cause)
		suite.ErrorIs(got, cause)
		suite.NotErrorIs(got, ErrNotRunning)
		suite.NotErrorIs(got, ErrAccessDenied)
	})
}
