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
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirebook/hirebook/internal/employer/internal/domain"
	"github.com/hirebook/hirebook/internal/employer/internal/event"
	"github.com/hirebook/hirebook/internal/employer/internal/repository"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/pkg/snowflake"
)

//go:generate mockgen -source=./service.go -destination=../mocks/employer.mock.go -package=employermocks -typed Service
type Service interface {
	// Register 用装配好的提交载荷注册雇主账号。
	// 载荷里的规范属性提升成实体列，剩下的整体存成动态字段 JSON
	Register(ctx context.Context, payload map[string]any) (domain.Employer, error)
	Profile(ctx context.Context, id int64) (domain.Employer, error)
}

type employerService struct {
	repo     repository.EmployerRepository
	idGen    snowflake.AccountIDGenerator
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewService(repo repository.EmployerRepository,
	idGen snowflake.AccountIDGenerator,
	producer event.RegistrationEventProducer) Service {
	return &employerService{
		repo:     repo,
		idGen:    idGen,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (svc *employerService) Register(ctx context.Context, payload map[string]any) (domain.Employer, error) {
	emp := domain.Employer{
		CompanyName:  str(payload, formfield.AttrCompanyName),
		Website:      str(payload, formfield.AttrWebsite),
		Email:        str(payload, formfield.AttrEmail),
		Phone:        str(payload, formfield.AttrPhone),
		Location:     str(payload, formfield.AttrLocation),
		CustomFields: payload,
	}
	// logo 走 PICTURE 字段，装配之后是一个 logos 目录下的 URL
	for key, v := range payload {
		if url, ok := v.(string); ok && strings.HasPrefix(key, "customField_") &&
			strings.Contains(url, "/logos/") {
			emp.LogoURL = url
			break
		}
	}
	if pwd := str(payload, formfield.AttrPassword); pwd != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
		if err != nil {
			return domain.Employer{}, err
		}
		emp.PasswordHash = string(hash)
		// 明文密码不落库：规范键和 PASSWORD 字段自己的动态键一起清掉
		delete(payload, formfield.AttrPassword)
		for key, v := range payload {
			if s, ok := v.(string); ok && s == pwd &&
				strings.HasPrefix(key, "customField_") {
				delete(payload, key)
			}
		}
	}

	id, err := svc.idGen.Generate(snowflake.RoleEmployer)
	if err != nil {
		return domain.Employer{}, err
	}
	emp.Id = id.Int64()

	if _, err := svc.repo.Create(ctx, emp); err != nil {
		return domain.Employer{}, err
	}

	evt := event.RegistrationEvent{
		Id:          emp.Id,
		CompanyName: emp.CompanyName,
		Email:       emp.Email,
	}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		// 注册已经成功，消息发不出去只记日志
		svc.logger.Error("发送雇主注册消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return emp, nil
}

func (svc *employerService) Profile(ctx context.Context, id int64) (domain.Employer, error) {
	return svc.repo.FindById(ctx, id)
}

func str(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
