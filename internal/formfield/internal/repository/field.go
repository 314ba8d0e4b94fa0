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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
	"github.com/hirebook/hirebook/internal/formfield/internal/repository/cache"
	"github.com/hirebook/hirebook/internal/formfield/internal/repository/dao"
)

//go:generate mockgen -source=./field.go -destination=../mocks/repository.mock.go -package=formfieldmocks -typed FieldRepository
type FieldRepository interface {
	// ListFields 没配置过的 Context 返回空切片
	ListFields(ctx context.Context, fctx domain.Context) ([]domain.FieldDefinition, error)
	Save(ctx context.Context, def domain.FieldDefinition) (int64, error)
	Delete(ctx context.Context, id int64, fctx domain.Context) error
	// PreloadCache 全量刷一遍各 Context 的缓存
	PreloadCache(ctx context.Context) error
}

type CachedFieldRepository struct {
	dao    dao.FieldDefinitionDAO
	cache  cache.FieldDefinitionCache
	logger *elog.Component
}

func NewCachedFieldRepository(d dao.FieldDefinitionDAO, c cache.FieldDefinitionCache) FieldRepository {
	return &CachedFieldRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedFieldRepository) ListFields(ctx context.Context, fctx domain.Context) ([]domain.FieldDefinition, error) {
	defs, err := repo.cache.GetFields(ctx, fctx)
	if err == nil {
		return defs, nil
	}
	entities, err := repo.dao.ListByContext(ctx, fctx.String())
	if err != nil {
		return nil, err
	}
	defs = slice.Map(entities, func(idx int, src dao.FieldDefinition) domain.FieldDefinition {
		return repo.toDomain(src)
	})
	// 回填缓存失败只记日志，不影响主流程
	if err := repo.cache.SetFields(ctx, fctx, defs); err != nil {
		repo.logger.Error("回填字段定义缓存失败",
			elog.String("context", fctx.String()),
			elog.FieldErr(err))
	}
	return defs, nil
}

func (repo *CachedFieldRepository) Save(ctx context.Context, def domain.FieldDefinition) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(def))
	if err != nil {
		return 0, err
	}
	repo.invalidate(ctx, def.Context)
	return id, nil
}

func (repo *CachedFieldRepository) Delete(ctx context.Context, id int64, fctx domain.Context) error {
	err := repo.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	repo.invalidate(ctx, fctx)
	return nil
}

func (repo *CachedFieldRepository) PreloadCache(ctx context.Context) error {
	for _, fctx := range domain.Contexts {
		entities, err := repo.dao.ListByContext(ctx, fctx.String())
		if err != nil {
			return err
		}
		defs := slice.Map(entities, func(idx int, src dao.FieldDefinition) domain.FieldDefinition {
			return repo.toDomain(src)
		})
		if err := repo.cache.SetFields(ctx, fctx, defs); err != nil {
			return err
		}
	}
	return nil
}

func (repo *CachedFieldRepository) invalidate(ctx context.Context, fctx domain.Context) {
	if err := repo.cache.Delete(ctx, fctx); err != nil {
		repo.logger.Error("删除字段定义缓存失败",
			elog.String("context", fctx.String()),
			elog.FieldErr(err))
	}
}

func (repo *CachedFieldRepository) toDomain(src dao.FieldDefinition) domain.FieldDefinition {
	return domain.FieldDefinition{
		Id:          src.Id,
		Caption:     src.Caption,
		Kind:        domain.Kind(src.Kind),
		Required:    src.Required,
		Hidden:      src.Hidden,
		Options:     src.Options,
		Placeholder: src.Placeholder,
		HelpText:    src.HelpText,
		Context:     domain.Context(src.Context),
		Order:       src.Order,
	}
}

func (repo *CachedFieldRepository) toEntity(def domain.FieldDefinition) dao.FieldDefinition {
	return dao.FieldDefinition{
		Id:          def.Id,
		Caption:     def.Caption,
		Kind:        string(def.Kind),
		Required:    def.Required,
		Hidden:      def.Hidden,
		Options:     def.Options,
		Placeholder: def.Placeholder,
		HelpText:    def.HelpText,
		Context:     string(def.Context),
		Order:       def.Order,
	}
}
