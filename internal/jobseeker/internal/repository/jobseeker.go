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

	"github.com/hirebook/hirebook/internal/jobseeker/internal/domain"
	"github.com/hirebook/hirebook/internal/jobseeker/internal/repository/dao"
)

var (
	ErrDuplicateEmail    = dao.ErrDuplicateEmail
	ErrJobSeekerNotFound = errors.New("求职者不存在")
)

type JobSeekerRepository interface {
	Create(ctx context.Context, seeker domain.JobSeeker) (int64, error)
	FindById(ctx context.Context, id int64) (domain.JobSeeker, error)
	ListSearchable(ctx context.Context, offset, limit int) ([]domain.JobSeeker, error)
}

type jobSeekerRepository struct {
	dao    dao.JobSeekerDAO
	logger *elog.Component
}

func NewJobSeekerRepository(d dao.JobSeekerDAO) JobSeekerRepository {
	return &jobSeekerRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (repo *jobSeekerRepository) Create(ctx context.Context, seeker domain.JobSeeker) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(seeker))
}

func (repo *jobSeekerRepository) FindById(ctx context.Context, id int64) (domain.JobSeeker, error) {
	seeker, err := repo.dao.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.JobSeeker{}, ErrJobSeekerNotFound
	}
	if err != nil {
		return domain.JobSeeker{}, err
	}
	return repo.toDomain(seeker), nil
}

func (repo *jobSeekerRepository) ListSearchable(ctx context.Context, offset, limit int) ([]domain.JobSeeker, error) {
	entities, err := repo.dao.ListSearchable(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.JobSeeker) domain.JobSeeker {
		return repo.toDomain(src)
	}), nil
}

func (repo *jobSeekerRepository) toEntity(seeker domain.JobSeeker) dao.JobSeeker {
	var customFields []byte
	if seeker.CustomFields != nil {
		var err error
		customFields, err = json.Marshal(seeker.CustomFields)
		if err != nil {
			repo.logger.Error("序列化动态字段失败", elog.FieldErr(err))
		}
	}
	return dao.JobSeeker{
		Id:               seeker.Id,
		FirstName:        seeker.FirstName,
		LastName:         seeker.LastName,
		FullName:         seeker.FullName,
		Email:            seeker.Email,
		Phone:            seeker.Phone,
		Location:         seeker.Location,
		LetEmployersFind: seeker.LetEmployersFind,
		Password:         seeker.PasswordHash,
		CustomFields:     string(customFields),
	}
}

func (repo *jobSeekerRepository) toDomain(seeker dao.JobSeeker) domain.JobSeeker {
	var customFields map[string]any
	if seeker.CustomFields != "" {
		if err := json.Unmarshal([]byte(seeker.CustomFields), &customFields); err != nil {
			repo.logger.Error("反序列化动态字段失败",
				elog.Int64("id", seeker.Id),
				elog.FieldErr(err))
		}
	}
	return domain.JobSeeker{
		Id:               seeker.Id,
		FirstName:        seeker.FirstName,
		LastName:         seeker.LastName,
		FullName:         seeker.FullName,
		Email:            seeker.Email,
		Phone:            seeker.Phone,
		Location:         seeker.Location,
		LetEmployersFind: seeker.LetEmployersFind,
		PasswordHash:     seeker.Password,
		CustomFields:     customFields,
	}
}
