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

package moerr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	ctx := context.TODO()
	tests := []struct {
		err     *Error
		code    uint16
		message string
	}{
		{NewInternalError(ctx, "boom %d", 42), ErrInternal, "internal error: boom 42"},
		{NewBadConfig(ctx, "no such file"), ErrBadConfig, "invalid configuration: no such file"},
		{NewInvalidInput(ctx, "bad %s", "value"), ErrInvalidInput, "invalid input: bad value"},
		{NewFieldAccess(ctx, "name", errors.New("closed")), ErrFieldAccess, "cannot access field name: closed"},
	}
	for _, tt := range tests {
		require.NotNil(t, tt.err)
		assert.Equal(t, tt.code, tt.err.ErrorCode())
		assert.Equal(t, tt.message, tt.err.Error())
		assert.False(t, tt.err.Succeeded())
	}
}

func TestIsMoErrCode(t *testing.T) {
	err := NewFieldAccess(context.TODO(), "id", errors.New("nope"))
	assert.True(t, IsMoErrCode(err, ErrFieldAccess))
	assert.False(t, IsMoErrCode(err, ErrInternal))
	assert.False(t, IsMoErrCode(errors.New("plain"), ErrFieldAccess))
	assert.True(t, IsMoErrCode(nil, Ok))
}
