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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/resume/internal/domain"
)

type fakeRepo struct {
	created domain.Resume
	stored  map[int64]domain.Resume
	nextId  int64
	err     error
}

func (f *fakeRepo) Create(_ context.Context, r domain.Resume) (int64, error) {
	f.nextId++
	f.created = r
	return f.nextId, f.err
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.Resume, error) {
	return f.stored[id], f.err
}

func (f *fakeRepo) ListByUid(_ context.Context, uid int64) ([]domain.Resume, error) {
	var res []domain.Resume
	for _, r := range f.stored {
		if r.Uid == uid {
			res = append(res, r)
		}
	}
	return res, f.err
}

func (f *fakeRepo) Delete(_ context.Context, id, uid int64) error {
	return f.err
}

func TestResumeService_Create(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := NewService(repo)

	payload := map[string]any{
		"customField_1":                "Backend Engineer",
		"customField_3":                "http://localhost:8002/static/uploads/abc.pdf",
		formfield.AttrDesiredJobTitle:  "Backend Engineer",
		formfield.AttrJobType:          "全职",
		formfield.AttrCategories:       []any{"后端", "基础架构"},
		formfield.AttrPersonalSummary:  "十年 Go 开发经验",
		formfield.AttrLocation:         "Hangzhou",
	}

	r, err := svc.Create(context.Background(), 1001, payload)
	require.NoError(t, err)

	assert.Equal(t, int64(1), r.Id)
	assert.Equal(t, int64(1001), r.Uid)
	assert.Equal(t, "Backend Engineer", r.DesiredJobTitle)
	assert.Equal(t, "全职", r.JobType)
	assert.Equal(t, []string{"后端", "基础架构"}, r.Categories)
	// 附件取 uploads 目录下的那个 URL，头像之类的不算
	assert.Equal(t, "http://localhost:8002/static/uploads/abc.pdf", r.FileURL)
	assert.Equal(t, payload, repo.created.CustomFields)
}

func TestResumeService_Create_没有附件(t *testing.T) {
	t.Parallel()
	svc := NewService(&fakeRepo{})

	r, err := svc.Create(context.Background(), 1001, map[string]any{
		formfield.AttrDesiredJobTitle: "Designer",
	})
	require.NoError(t, err)
	assert.Empty(t, r.FileURL)
}

func TestResumeService_Info_只有主人能看(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{stored: map[int64]domain.Resume{
		7: {Id: 7, Uid: 1001, DesiredJobTitle: "Backend Engineer"},
	}}
	svc := NewService(repo)

	r, err := svc.Info(context.Background(), 7, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", r.DesiredJobTitle)

	_, err = svc.Info(context.Background(), 7, 2002)
	assert.ErrorIs(t, err, ErrNotTheOwner)
}
