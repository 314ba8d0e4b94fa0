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

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"

	"github.com/hirebook/hirebook/internal/application/internal/domain"
	"github.com/hirebook/hirebook/internal/application/internal/repository/dao"
)

var (
	ErrDuplicateApplication = dao.ErrDuplicateApplication
	ErrApplicationNotFound  = errors.New("投递记录不存在")
)

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Application, error)
	ListByJobSeeker(ctx context.Context, jobSeekerId int64) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, sn string, status domain.ApplicationStatus) error
}

type applicationRepository struct {
	dao    dao.ApplicationDAO
	logger *elog.Component
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (repo *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(app))
}

func (repo *applicationRepository) FindBySN(ctx context.Context, sn string) (domain.Application, error) {
	app, err := repo.dao.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return repo.toDomain(app), nil
}

func (repo *applicationRepository) ListByJobSeeker(ctx context.Context, jobSeekerId int64) ([]domain.Application, error) {
	entities, err := repo.dao.ListByJobSeeker(ctx, jobSeekerId)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), nil
}

func (repo *applicationRepository) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.Application, error) {
	entities, err := repo.dao.ListByJob(ctx, jobId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), nil
}

func (repo *applicationRepository) UpdateStatus(ctx context.Context, sn string, status domain.ApplicationStatus) error {
	return repo.dao.UpdateStatus(ctx, sn, status.ToUint8())
}

func (repo *applicationRepository) toEntity(app domain.Application) dao.Application {
	var customFields []byte
	if app.CustomFields != nil {
		var err error
		customFields, err = json.Marshal(app.CustomFields)
		if err != nil {
			repo.logger.Error("序列化动态字段失败", elog.FieldErr(err))
		}
	}
	return dao.Application{
		Id:           app.Id,
		SN:           app.SN,
		JobId:        app.JobId,
		JobSeekerId:  app.JobSeekerId,
		FullName:     app.FullName,
		Email:        app.Email,
		Phone:        app.Phone,
		ResumeUrl:    app.ResumeURL,
		CustomFields: string(customFields),
		Status:       app.Status.ToUint8(),
	}
}

func (repo *applicationRepository) toDomain(app dao.Application) domain.Application {
	var customFields map[string]any
	if app.CustomFields != "" {
		if err := json.Unmarshal([]byte(app.CustomFields), &customFields); err != nil {
			repo.logger.Error("反序列化动态字段失败",
				elog.String("sn", app.SN),
				elog.FieldErr(err))
		}
	}
	return domain.Application{
		Id:           app.Id,
		SN:           app.SN,
		JobId:        app.JobId,
		JobSeekerId:  app.JobSeekerId,
		FullName:     app.FullName,
		Email:        app.Email,
		Phone:        app.Phone,
		ResumeURL:    app.ResumeUrl,
		CustomFields: customFields,
		Status:       domain.ApplicationStatus(app.Status),
		Utime:        app.Utime,
	}
}
