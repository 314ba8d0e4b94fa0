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
	"golang.org/x/crypto/bcrypt"

	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/jobseeker/internal/domain"
	"github.com/hirebook/hirebook/internal/jobseeker/internal/event"
	"github.com/hirebook/hirebook/internal/pkg/snowflake"
)

type fakeRepo struct {
	created domain.JobSeeker
}

func (f *fakeRepo) Create(_ context.Context, seeker domain.JobSeeker) (int64, error) {
	f.created = seeker
	return seeker.Id, nil
}

func (f *fakeRepo) FindById(_ context.Context, _ int64) (domain.JobSeeker, error) {
	return f.created, nil
}

func (f *fakeRepo) ListSearchable(_ context.Context, _, _ int) ([]domain.JobSeeker, error) {
	return []domain.JobSeeker{f.created}, nil
}

type fakeProducer struct {
	events []event.RegistrationEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.RegistrationEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func TestJobSeekerService_Register(t *testing.T) {
	t.Parallel()
	idGen, err := snowflake.NewRoleAwareGenerator(0, 2)
	require.NoError(t, err)
	repo := &fakeRepo{}
	producer := &fakeProducer{}
	svc := NewService(repo, idGen, producer)

	seeker, err := svc.Register(context.Background(), map[string]any{
		formfield.AttrFirstName:        "Jane",
		formfield.AttrLastName:         "Roe",
		formfield.AttrEmail:            "jane@example.com",
		formfield.AttrPhone:            "13800000000",
		formfield.AttrLetEmployersFind: true,
	})
	require.NoError(t, err)

	// FullName 没有单独的字段时由 First/Last 拼出来
	assert.Equal(t, "Jane Roe", seeker.FullName)
	assert.True(t, seeker.LetEmployersFind)
	assert.Equal(t, snowflake.RoleJobSeeker, snowflake.ID(seeker.Id).Role())

	require.Len(t, producer.events, 1)
	assert.Equal(t, "Jane Roe", producer.events[0].FullName)
	assert.True(t, producer.events[0].LetEmployersFind)
}

// 注册载荷里 PASSWORD 字段的动态键也带着明文，落库前要一并清掉
func TestJobSeekerService_Register_明文密码不进动态字段(t *testing.T) {
	t.Parallel()
	idGen, err := snowflake.NewRoleAwareGenerator(0, 2)
	require.NoError(t, err)
	repo := &fakeRepo{}
	svc := NewService(repo, idGen, &fakeProducer{})

	_, err = svc.Register(context.Background(), map[string]any{
		"customField_9":        "s3cret",
		formfield.AttrEmail:    "jane@example.com",
		formfield.AttrPassword: "s3cret",
	})
	require.NoError(t, err)

	assert.NotContains(t, repo.created.CustomFields, "customField_9")
	assert.NotContains(t, repo.created.CustomFields, formfield.AttrPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.created.PasswordHash), []byte("s3cret")))
}

func TestJobSeekerService_Register_整体Name字段优先(t *testing.T) {
	t.Parallel()
	idGen, err := snowflake.NewRoleAwareGenerator(0, 2)
	require.NoError(t, err)
	svc := NewService(&fakeRepo{}, idGen, &fakeProducer{})

	seeker, err := svc.Register(context.Background(), map[string]any{
		formfield.AttrFullName: "Jane Roe",
		formfield.AttrEmail:    "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", seeker.FullName)
	assert.False(t, seeker.LetEmployersFind)
}
