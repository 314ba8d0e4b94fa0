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

	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"

	"github.com/hirebook/hirebook/internal/employer/internal/domain"
	"github.com/hirebook/hirebook/internal/employer/internal/repository/dao"
)

var (
	ErrDuplicateEmail   = dao.ErrDuplicateEmail
	ErrEmployerNotFound = errors.New("雇主不存在")
)

type EmployerRepository interface {
	Create(ctx context.Context, emp domain.Employer) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Employer, error)
}

type employerRepository struct {
	dao    dao.EmployerDAO
	logger *elog.Component
}

func NewEmployerRepository(d dao.EmployerDAO) EmployerRepository {
	return &employerRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (repo *employerRepository) Create(ctx context.Context, emp domain.Employer) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(emp))
}

func (repo *employerRepository) FindById(ctx context.Context, id int64) (domain.Employer, error) {
	emp, err := repo.dao.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Employer{}, ErrEmployerNotFound
	}
	if err != nil {
		return domain.Employer{}, err
	}
	return repo.toDomain(emp), nil
}

func (repo *employerRepository) toEntity(emp domain.Employer) dao.Employer {
	var customFields []byte
	if emp.CustomFields != nil {
		var err error
		customFields, err = json.Marshal(emp.CustomFields)
		if err != nil {
			// 载荷都是 JSON 解码出来的基本类型，真走到这里说明上游出了大问题
			repo.logger.Error("序列化动态字段失败", elog.FieldErr(err))
		}
	}
	return dao.Employer{
		Id:           emp.Id,
		CompanyName:  emp.CompanyName,
		Website:      emp.Website,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Location:     emp.Location,
		LogoUrl:      emp.LogoURL,
		Password:     emp.PasswordHash,
		CustomFields: string(customFields),
	}
}

func (repo *employerRepository) toDomain(emp dao.Employer) domain.Employer {
	var customFields map[string]any
	if emp.CustomFields != "" {
		if err := json.Unmarshal([]byte(emp.CustomFields), &customFields); err != nil {
			repo.logger.Error("反序列化动态字段失败",
				elog.Int64("id", emp.Id),
				elog.FieldErr(err))
		}
	}
	return domain.Employer{
		Id:           emp.Id,
		CompanyName:  emp.CompanyName,
		Website:      emp.Website,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Location:     emp.Location,
		LogoURL:      emp.LogoUrl,
		PasswordHash: emp.Password,
		CustomFields: customFields,
	}
}
