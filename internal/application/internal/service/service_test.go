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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebook/hirebook/internal/application/internal/domain"
	"github.com/hirebook/hirebook/internal/application/internal/event"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/pkg/sequencenumber"
)

type fakeRepo struct {
	created domain.Application
	err     error
}

func (f *fakeRepo) Create(_ context.Context, app domain.Application) (int64, error) {
	f.created = app
	return 1, f.err
}

func (f *fakeRepo) FindBySN(_ context.Context, _ string) (domain.Application, error) {
	return f.created, f.err
}

func (f *fakeRepo) ListByJobSeeker(_ context.Context, _ int64) ([]domain.Application, error) {
	return []domain.Application{f.created}, f.err
}

func (f *fakeRepo) ListByJob(_ context.Context, _ int64, _, _ int) ([]domain.Application, error) {
	return []domain.Application{f.created}, f.err
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ string, status domain.ApplicationStatus) error {
	f.created.Status = status
	return f.err
}

type fakeProducer struct {
	events []event.SubmittedEvent
	err    error
}

func (f *fakeProducer) Produce(_ context.Context, evt event.SubmittedEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

func newTestGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGeneratorWith(
		func(t time.Time) int64 { return 1716000000000 },
		func() string { return "aaaaaaaaaaaaaaaaaaaaaa" })
}

func TestApplicationService_Submit(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	producer := &fakeProducer{}
	svc := NewService(repo, newTestGenerator(), producer)

	payload := map[string]any{
		"customField_1":        "张三",
		"customField_5":        "http://localhost:8002/static/uploads/cv.pdf",
		formfield.AttrFullName: "张三",
		formfield.AttrEmail:    "zhangsan@example.com",
		formfield.AttrPhone:    "13800001111",
	}

	app, err := svc.Submit(context.Background(), 1001, 42, payload)
	require.NoError(t, err)

	assert.Equal(t, int64(1), app.Id)
	assert.Len(t, app.SN, 32)
	assert.Equal(t, int64(42), app.JobId)
	assert.Equal(t, int64(1001), app.JobSeekerId)
	assert.Equal(t, "张三", app.FullName)
	assert.Equal(t, "zhangsan@example.com", app.Email)
	assert.Equal(t, "http://localhost:8002/static/uploads/cv.pdf", app.ResumeURL)
	assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)

	require.Len(t, producer.events, 1)
	assert.Equal(t, event.SubmittedEvent{
		SN:          app.SN,
		JobId:       42,
		JobSeekerId: 1001,
		FullName:    "张三",
		Email:       "zhangsan@example.com",
	}, producer.events[0])
}

func TestApplicationService_Submit_姓名兜底拼接(t *testing.T) {
	t.Parallel()
	svc := NewService(&fakeRepo{}, newTestGenerator(), &fakeProducer{})

	app, err := svc.Submit(context.Background(), 1001, 42, map[string]any{
		formfield.AttrFirstName: "San",
		formfield.AttrLastName:  "Zhang",
	})
	require.NoError(t, err)
	assert.Equal(t, "San Zhang", app.FullName)
}

func TestApplicationService_Submit_消息失败不影响投递(t *testing.T) {
	t.Parallel()
	svc := NewService(&fakeRepo{}, newTestGenerator(), &fakeProducer{err: assert.AnError})

	app, err := svc.Submit(context.Background(), 1001, 42, map[string]any{
		formfield.AttrFullName: "张三",
	})
	require.NoError(t, err)
	assert.NotZero(t, app.Id)
}
