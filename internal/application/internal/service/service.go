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

	"github.com/hirebook/hirebook/internal/application/internal/domain"
	"github.com/hirebook/hirebook/internal/application/internal/event"
	"github.com/hirebook/hirebook/internal/application/internal/repository"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/pkg/sequencenumber"
)

//go:generate mockgen -source=./service.go -destination=../mocks/application.mock.go -package=applicationmocks -typed Service
type Service interface {
	// Submit 用装配好的提交载荷投递职位。
	// 重复投递返回 repository.ErrDuplicateApplication
	Submit(ctx context.Context, jobSeekerId, jobId int64, payload map[string]any) (domain.Application, error)
	ListMine(ctx context.Context, jobSeekerId int64) ([]domain.Application, error)
	// ListByJob 雇主侧按职位翻投递列表
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, sn string, status domain.ApplicationStatus) error
}

type applicationService struct {
	repo     repository.ApplicationRepository
	snGen    *sequencenumber.Generator
	producer event.SubmittedEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	snGen *sequencenumber.Generator,
	producer event.SubmittedEventProducer) Service {
	return &applicationService{
		repo:     repo,
		snGen:    snGen,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (svc *applicationService) Submit(ctx context.Context,
	jobSeekerId, jobId int64, payload map[string]any) (domain.Application, error) {
	sn, err := svc.snGen.Generate(jobSeekerId)
	if err != nil {
		return domain.Application{}, err
	}
	app := domain.Application{
		SN:           sn,
		JobId:        jobId,
		JobSeekerId:  jobSeekerId,
		FullName:     fullName(payload),
		Email:        str(payload, formfield.AttrEmail),
		Phone:        str(payload, formfield.AttrPhone),
		CustomFields: payload,
		Status:       domain.ApplicationStatusSubmitted,
	}
	// 附件简历走 FILE 字段，装配之后是 uploads 目录下的 URL
	for key, v := range payload {
		if url, ok := v.(string); ok && strings.HasPrefix(key, "customField_") &&
			strings.Contains(url, "/uploads/") {
			app.ResumeURL = url
			break
		}
	}

	id, err := svc.repo.Create(ctx, app)
	if err != nil {
		return domain.Application{}, err
	}
	app.Id = id

	evt := event.SubmittedEvent{
		SN:          app.SN,
		JobId:       app.JobId,
		JobSeekerId: app.JobSeekerId,
		FullName:    app.FullName,
		Email:       app.Email,
	}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		// 投递已经成功，消息发不出去只记日志
		svc.logger.Error("发送投递消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return app, nil
}

func (svc *applicationService) ListMine(ctx context.Context, jobSeekerId int64) ([]domain.Application, error) {
	return svc.repo.ListByJobSeeker(ctx, jobSeekerId)
}

func (svc *applicationService) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]domain.Application, error) {
	return svc.repo.ListByJob(ctx, jobId, offset, limit)
}

func (svc *applicationService) UpdateStatus(ctx context.Context, sn string, status domain.ApplicationStatus) error {
	return svc.repo.UpdateStatus(ctx, sn, status)
}

func fullName(payload map[string]any) string {
	if name := str(payload, formfield.AttrFullName); name != "" {
		return name
	}
	return strings.TrimSpace(str(payload, formfield.AttrFirstName) + " " +
		str(payload, formfield.AttrLastName))
}

func str(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
