// Copyright 2024 hirebook
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAwareGenerator_Generate(t *testing.T) {
	t.Parallel()
	gen, err := NewRoleAwareGenerator(0, 2)
	require.NoError(t, err)

	employerID, err := gen.Generate(RoleEmployer)
	require.NoError(t, err)
	assert.Equal(t, RoleEmployer, employerID.Role())

	seekerID, err := gen.Generate(RoleJobSeeker)
	require.NoError(t, err)
	assert.Equal(t, RoleJobSeeker, seekerID.Role())

	assert.NotEqual(t, employerID.Int64(), seekerID.Int64())

	_, err = gen.Generate(Role(9))
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestNewRoleAwareGenerator_参数校验(t *testing.T) {
	t.Parallel()
	_, err := NewRoleAwareGenerator(32, 2)
	assert.ErrorIs(t, err, ErrExceedNode)
	_, err = NewRoleAwareGenerator(0, 33)
	assert.ErrorIs(t, err, ErrExceedRole)
}

func TestRoleAwareGenerator_Generate_递增(t *testing.T) {
	t.Parallel()
	gen, err := NewRoleAwareGenerator(1, 2)
	require.NoError(t, err)
	prev, err := gen.Generate(RoleJobSeeker)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		id, err := gen.Generate(RoleJobSeeker)
		require.NoError(t, err)
		assert.Greater(t, id.Int64(), prev.Int64())
		prev = id
	}
}
