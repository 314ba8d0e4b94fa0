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

	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/jobseeker/internal/domain"
	"github.com/hirebook/hirebook/internal/jobseeker/internal/event"
	"github.com/hirebook/hirebook/internal/jobseeker/internal/repository"
	"github.com/hirebook/hirebook/internal/pkg/snowflake"
)

//go:generate mockgen -source=./service.go -destination=../mocks/jobseeker.mock.go -package=jobseekermocks -typed Service
type Service interface {
	Register(ctx context.Context, payload map[string]any) (domain.JobSeeker, error)
	Profile(ctx context.Context, id int64) (domain.JobSeeker, error)
	// ListSearchable 人才库分页，给雇主侧用
	ListSearchable(ctx context.Context, offset, limit int) ([]domain.JobSeeker, error)
}

type jobSeekerService struct {
	repo     repository.JobSeekerRepository
	idGen    snowflake.AccountIDGenerator
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewService(repo repository.JobSeekerRepository,
	idGen snowflake.AccountIDGenerator,
	producer event.RegistrationEventProducer) Service {
	return &jobSeekerService{
		repo:     repo,
		idGen:    idGen,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (svc *jobSeekerService) Register(ctx context.Context, payload map[string]any) (domain.JobSeeker, error) {
	seeker := domain.JobSeeker{
		FirstName:    str(payload, formfield.AttrFirstName),
		LastName:     str(payload, formfield.AttrLastName),
		FullName:     str(payload, formfield.AttrFullName),
		Email:        str(payload, formfield.AttrEmail),
		Phone:        str(payload, formfield.AttrPhone),
		Location:     str(payload, formfield.AttrLocation),
		CustomFields: payload,
	}
	// 拆开的姓名字段和整体的 Name 字段两头互补
	if seeker.FullName == "" {
		seeker.FullName = strings.TrimSpace(seeker.FirstName + " " + seeker.LastName)
	}
	if b, ok := payload[formfield.AttrLetEmployersFind].(bool); ok {
		seeker.LetEmployersFind = b
	}
	if pwd := str(payload, formfield.AttrPassword); pwd != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
		if err != nil {
			return domain.JobSeeker{}, err
		}
		seeker.PasswordHash = string(hash)
		// 明文密码不落库：规范键和 PASSWORD 字段自己的动态键一起清掉
		delete(payload, formfield.AttrPassword)
		for key, v := range payload {
			if s, ok := v.(string); ok && s == pwd &&
				strings.HasPrefix(key, "customField_") {
				delete(payload, key)
			}
		}
	}

	id, err := svc.idGen.Generate(snowflake.RoleJobSeeker)
	if err != nil {
		return domain.JobSeeker{}, err
	}
	seeker.Id = id.Int64()

	if _, err := svc.repo.Create(ctx, seeker); err != nil {
		return domain.JobSeeker{}, err
	}

	evt := event.RegistrationEvent{
		Id:               seeker.Id,
		FullName:         seeker.FullName,
		Email:            seeker.Email,
		LetEmployersFind: seeker.LetEmployersFind,
	}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送求职者注册消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return seeker, nil
}

func (svc *jobSeekerService) Profile(ctx context.Context, id int64) (domain.JobSeeker, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *jobSeekerService) ListSearchable(ctx context.Context, offset, limit int) ([]domain.JobSeeker, error) {
	return svc.repo.ListSearchable(ctx, offset, limit)
}

func str(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
