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

package cache

import (
	"context"
	"testing"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

// 只覆盖 Get，其余方法用不到
type stubCache struct {
	ecache.Cache
	val ecache.Value
}

func (s *stubCache) Get(_ context.Context, _ string) ecache.Value {
	return s.val
}

// 缓存键下塞了类型不对的值时当未命中处理，让仓储回源 DAO，不能 panic
func TestFieldDefinitionECache_GetFields_类型不对当未命中(t *testing.T) {
	t.Parallel()
	c := NewFieldDefinitionECache(&stubCache{
		val: ecache.Value{AnyValue: ekit.AnyValue{Val: 12345}},
	})
	_, err := c.GetFields(context.Background(), domain.ContextEmployer)
	assert.ErrorIs(t, err, ErrFieldsNotCached)
}
