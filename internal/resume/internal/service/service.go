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
	"errors"

	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/resume/internal/domain"
	"github.com/hirebook/hirebook/internal/resume/internal/repository"
)

var ErrNotTheOwner = errors.New("不是简历的主人")

//go:generate mockgen -source=./service.go -destination=../mocks/resume.mock.go -package=resumemocks -typed Service
type Service interface {
	// Create 用装配好的提交载荷建一份简历
	Create(ctx context.Context, uid int64, payload map[string]any) (domain.Resume, error)
	List(ctx context.Context, uid int64) ([]domain.Resume, error)
	// Info 只有简历主人能看
	Info(ctx context.Context, id, uid int64) (domain.Resume, error)
	Delete(ctx context.Context, id, uid int64) error
}

type resumeService struct {
	repo repository.ResumeRepository
}

func NewService(repo repository.ResumeRepository) Service {
	return &resumeService{repo: repo}
}

func (svc *resumeService) Create(ctx context.Context, uid int64, payload map[string]any) (domain.Resume, error) {
	r := domain.Resume{
		Uid:             uid,
		DesiredJobTitle: str(payload, formfield.AttrDesiredJobTitle),
		JobType:         str(payload, formfield.AttrJobType),
		Categories:      strs(payload, formfield.AttrCategories),
		PersonalSummary: str(payload, formfield.AttrPersonalSummary),
		Location:        str(payload, formfield.AttrLocation),
		CustomFields:    payload,
	}
	// 附件走 FILE 字段，装配之后是 uploads 目录下的 URL
	for key, v := range payload {
		if url, ok := v.(string); ok && isCustomFieldKey(key) && isUploadURL(url) {
			r.FileURL = url
			break
		}
	}
	id, err := svc.repo.Create(ctx, r)
	if err != nil {
		return domain.Resume{}, err
	}
	r.Id = id
	return r, nil
}

func (svc *resumeService) List(ctx context.Context, uid int64) ([]domain.Resume, error) {
	return svc.repo.ListByUid(ctx, uid)
}

func (svc *resumeService) Info(ctx context.Context, id, uid int64) (domain.Resume, error) {
	r, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.Resume{}, err
	}
	if r.Uid != uid {
		return domain.Resume{}, ErrNotTheOwner
	}
	return r, nil
}

func (svc *resumeService) Delete(ctx context.Context, id, uid int64) error {
	return svc.repo.Delete(ctx, id, uid)
}

func str(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

func strs(payload map[string]any, key string) []string {
	switch v := payload[key].(type) {
	case []string:
		return v
	case []any:
		res := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				res = append(res, s)
			}
		}
		return res
	default:
		return nil
	}
}

func isCustomFieldKey(key string) bool {
	return len(key) > 12 && key[:12] == "customField_"
}

func isUploadURL(url string) bool {
	for i := 0; i+9 <= len(url); i++ {
		if url[i:i+9] == "/uploads/" {
			return true
		}
	}
	return false
}
