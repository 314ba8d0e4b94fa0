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
	"encoding/json"
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"

	"github.com/hirebook/hirebook/internal/resume/internal/domain"
	"github.com/hirebook/hirebook/internal/resume/internal/repository/dao"
)

var ErrResumeNotFound = errors.New("简历不存在")

type ResumeRepository interface {
	Create(ctx context.Context, r domain.Resume) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Resume, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Resume, error)
	Delete(ctx context.Context, id, uid int64) error
}

type resumeRepository struct {
	dao    dao.ResumeDAO
	logger *elog.Component
}

func NewResumeRepository(d dao.ResumeDAO) ResumeRepository {
	return &resumeRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (repo *resumeRepository) Create(ctx context.Context, r domain.Resume) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(r))
}

func (repo *resumeRepository) FindById(ctx context.Context, id int64) (domain.Resume, error) {
	r, err := repo.dao.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Resume{}, ErrResumeNotFound
	}
	if err != nil {
		return domain.Resume{}, err
	}
	return repo.toDomain(r), nil
}

func (repo *resumeRepository) ListByUid(ctx context.Context, uid int64) ([]domain.Resume, error) {
	entities, err := repo.dao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Resume) domain.Resume {
		return repo.toDomain(src)
	}), nil
}

func (repo *resumeRepository) Delete(ctx context.Context, id, uid int64) error {
	return repo.dao.Delete(ctx, id, uid)
}

func (repo *resumeRepository) toEntity(r domain.Resume) dao.Resume {
	var customFields []byte
	if r.CustomFields != nil {
		var err error
		customFields, err = json.Marshal(r.CustomFields)
		if err != nil {
			repo.logger.Error("序列化动态字段失败", elog.FieldErr(err))
		}
	}
	return dao.Resume{
		Id:              r.Id,
		Uid:             r.Uid,
		DesiredJobTitle: r.DesiredJobTitle,
		JobType:         r.JobType,
		Categories:      strings.Join(r.Categories, "\n"),
		PersonalSummary: r.PersonalSummary,
		Location:        r.Location,
		FileUrl:         r.FileURL,
		CustomFields:    string(customFields),
	}
}

func (repo *resumeRepository) toDomain(r dao.Resume) domain.Resume {
	var customFields map[string]any
	if r.CustomFields != "" {
		if err := json.Unmarshal([]byte(r.CustomFields), &customFields); err != nil {
			repo.logger.Error("反序列化动态字段失败",
				elog.Int64("id", r.Id),
				elog.FieldErr(err))
		}
	}
	var categories []string
	if r.Categories != "" {
		categories = strings.Split(r.Categories, "\n")
	}
	return domain.Resume{
		Id:              r.Id,
		Uid:             r.Uid,
		DesiredJobTitle: r.DesiredJobTitle,
		JobType:         r.JobType,
		Categories:      categories,
		PersonalSummary: r.PersonalSummary,
		Location:        r.Location,
		FileURL:         r.FileUrl,
		CustomFields:    customFields,
		Utime:           r.Utime,
	}
}
