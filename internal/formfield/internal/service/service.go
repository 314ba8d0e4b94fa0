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

package service

import (
	"context"

	"github.com/gotomicro/ego/core/elog"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
	"github.com/hirebook/hirebook/internal/formfield/internal/repository"
)

// Uploader 文件上传协作方。引擎只关心拿回一个 URL，文件落在哪它不管
//
//go:generate mockgen -source=./service.go -destination=../mocks/formfield.mock.go -package=formfieldmocks -typed Uploader
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte, folder string) (string, error)
}

// Service 动态字段引擎。
// 管理端的增删改也在这里，字段定义对表单侧永远是只读的
type Service interface {
	// ListFields 按 Context 取有序的字段定义。没配置过就返回空切片，不是错误
	ListFields(ctx context.Context, fctx domain.Context) ([]domain.FieldDefinition, error)

	// InitValues 初始化取值表：每个定义一个条目，按 Kind 给空值；
	// 重复执行是合并语义，绝不覆盖用户已经填过的值；
	// 动态字段自己是空值而规范属性里有值的，用规范属性回填
	InitValues(defs []domain.FieldDefinition, existing map[string]domain.Value,
		canonical map[string]any) map[string]domain.Value

	// Controls 把字段定义和当前取值渲染成控件模型
	Controls(defs []domain.FieldDefinition, values map[string]domain.Value) []domain.Control

	// DecodeValues 把 JSON 解出来的原始值按字段 Kind 归一化
	DecodeValues(defs []domain.FieldDefinition, raw map[string]any) map[string]domain.Value

	// CanonicalTarget 按 Caption 推断该字段对应的规范属性，没命中返回 false
	CanonicalTarget(caption string) (string, bool)

	// ApplyChange 写入字段新值。Caption 命中规范属性规则时，
	// 字段值和规范属性在同一次调用里一起更新，不存在两者不一致的中间状态
	ApplyChange(def domain.FieldDefinition, val domain.Value,
		values map[string]domain.Value, canonical map[string]any)

	// Assemble 装配提交载荷：并发上传全部待上传的文件字段，任何一个失败整体放弃；
	// 成功后把 URL 和其余字段的原始值合并进载荷，再合并规范属性
	Assemble(ctx context.Context, defs []domain.FieldDefinition,
		values map[string]domain.Value, canonical map[string]any) (map[string]any, error)

	// ProcessSubmission 一次提交的完整流程：取定义、归一化、初始化合并、装配
	ProcessSubmission(ctx context.Context, fctx domain.Context,
		sub domain.Submission) (map[string]any, error)

	// 管理端
	SaveField(ctx context.Context, def domain.FieldDefinition) (int64, error)
	DeleteField(ctx context.Context, id int64, fctx domain.Context) error

	// PreloadCache 全量预热各个 Context 的字段定义缓存，给定时任务用
	PreloadCache(ctx context.Context) error
}

type formService struct {
	repo     repository.FieldRepository
	uploader Uploader
	logger   *elog.Component
}

func NewService(repo repository.FieldRepository, uploader Uploader) Service {
	return &formService{
		repo:     repo,
		uploader: uploader,
		logger:   elog.DefaultLogger,
	}
}

func (s *formService) ListFields(ctx context.Context, fctx domain.Context) ([]domain.FieldDefinition, error) {
	return s.repo.ListFields(ctx, fctx)
}

func (s *formService) SaveField(ctx context.Context, def domain.FieldDefinition) (int64, error) {
	return s.repo.Save(ctx, def)
}

func (s *formService) DeleteField(ctx context.Context, id int64, fctx domain.Context) error {
	return s.repo.Delete(ctx, id, fctx)
}

func (s *formService) PreloadCache(ctx context.Context) error {
	return s.repo.PreloadCache(ctx)
}

func (s *formService) ProcessSubmission(ctx context.Context, fctx domain.Context,
	sub domain.Submission) (map[string]any, error) {
	defs, err := s.repo.ListFields(ctx, fctx)
	if err != nil {
		return nil, err
	}
	values := s.DecodeValues(defs, sub.RawValues)
	// 文件挂到对应的文件型字段上，其他类型的字段不收文件
	for _, def := range defs {
		if !def.IsFileKind() {
			continue
		}
		if f, ok := sub.Files[def.Key()]; ok {
			val := values[def.Key()]
			val.File = &domain.FileUpload{Name: f.Name, Data: f.Data}
			values[def.Key()] = val
		}
	}
	values = s.InitValues(defs, values, sub.Canonical)
	return s.Assemble(ctx, defs, values, sub.Canonical)
}
