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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

var (
	ErrFieldsNotCached = errors.New("字段定义没有缓存")
)

const expiration = 30 * time.Minute

type FieldDefinitionCache interface {
	GetFields(ctx context.Context, fctx domain.Context) ([]domain.FieldDefinition, error)
	SetFields(ctx context.Context, fctx domain.Context, defs []domain.FieldDefinition) error
	Delete(ctx context.Context, fctx domain.Context) error
}

type FieldDefinitionECache struct {
	ec ecache.Cache
}

func NewFieldDefinitionECache(ec ecache.Cache) FieldDefinitionCache {
	return &FieldDefinitionECache{
		ec: &ecache.NamespaceCache{
			Namespace: "formfield:",
			C:         ec,
		},
	}
}

func (c *FieldDefinitionECache) GetFields(ctx context.Context, fctx domain.Context) ([]domain.FieldDefinition, error) {
	val := c.ec.Get(ctx, c.key(fctx))
	if val.KeyNotFound() {
		return nil, ErrFieldsNotCached
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询字段定义缓存出错")
	}
	data, ok := val.Val.(string)
	if !ok {
		// 缓存里的类型不对，当没缓存处理，回源 DAO
		return nil, ErrFieldsNotCached
	}
	var defs []domain.FieldDefinition
	err := json.Unmarshal([]byte(data), &defs)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化字段定义失败")
	}
	return defs, nil
}

func (c *FieldDefinitionECache) SetFields(ctx context.Context, fctx domain.Context, defs []domain.FieldDefinition) error {
	data, err := json.Marshal(defs)
	if err != nil {
		return errors.Wrap(err, "序列化字段定义失败")
	}
	return c.ec.Set(ctx, c.key(fctx), string(data), expiration)
}

func (c *FieldDefinitionECache) Delete(ctx context.Context, fctx domain.Context) error {
	_, err := c.ec.Delete(ctx, c.key(fctx))
	return err
}

func (c *FieldDefinitionECache) key(fctx domain.Context) string {
	return fmt.Sprintf("defs:%s", fctx)
}
