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

	"github.com/hirebook/hirebook/internal/employer/internal/domain"
	"github.com/hirebook/hirebook/internal/employer/internal/event"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/pkg/snowflake"
)

type fakeRepo struct {
	created domain.Employer
	err     error
}

func (f *fakeRepo) Create(_ context.Context, emp domain.Employer) (int64, error) {
	f.created = emp
	return emp.Id, f.err
}

func (f *fakeRepo) FindById(_ context.Context, _ int64) (domain.Employer, error) {
	return f.created, f.err
}

type fakeProducer struct {
	events []event.RegistrationEvent
	err    error
}

func (f *fakeProducer) Produce(_ context.Context, evt event.RegistrationEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

func TestEmployerService_Register(t *testing.T) {
	t.Parallel()
	idGen, err := snowflake.NewRoleAwareGenerator(0, 2)
	require.NoError(t, err)
	repo := &fakeRepo{}
	producer := &fakeProducer{}
	svc := NewService(repo, idGen, producer)

	payload := map[string]any{
		"customField_1":             "ACME",
		"customField_2":             "http://localhost:8002/static/logos/abc.png",
		formfield.AttrCompanyName:   "ACME",
		formfield.AttrWebsite:       "https://acme.example.com",
		formfield.AttrEmail:         "hr@acme.example.com",
		formfield.AttrPhone:         "021-12345678",
		formfield.AttrLocation:      "Shanghai",
		formfield.AttrPassword:      "s3cret",
	}

	emp, err := svc.Register(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "ACME", emp.CompanyName)
	assert.Equal(t, "hr@acme.example.com", emp.Email)
	assert.Equal(t, "http://localhost:8002/static/logos/abc.png", emp.LogoURL)
	// 账号 ID 带雇主分区
	assert.Equal(t, snowflake.RoleEmployer, snowflake.ID(emp.Id).Role())
	// 密码存的是 bcrypt 哈希，明文从载荷里删掉了
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("s3cret")))
	_, hasPwd := payload[formfield.AttrPassword]
	assert.False(t, hasPwd)

	require.Len(t, producer.events, 1)
	assert.Equal(t, event.RegistrationEvent{
		Id:          emp.Id,
		CompanyName: "ACME",
		Email:       "hr@acme.example.com",
	}, producer.events[0])
}

// PASSWORD 字段的明文挂在自己的动态键下进来时，落库的 custom_fields 里也不能有它
func TestEmployerService_Register_明文密码不进动态字段(t *testing.T) {
	t.Parallel()
	idGen, err := snowflake.NewRoleAwareGenerator(0, 2)
	require.NoError(t, err)
	repo := &fakeRepo{}
	svc := NewService(repo, idGen, &fakeProducer{})

	_, err = svc.Register(context.Background(), map[string]any{
		"customField_7":        "s3cret",
		formfield.AttrEmail:    "hr@acme.example.com",
		formfield.AttrPassword: "s3cret",
	})
	require.NoError(t, err)

	assert.NotContains(t, repo.created.CustomFields, "customField_7")
	assert.NotContains(t, repo.created.CustomFields, formfield.AttrPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.created.PasswordHash), []byte("s3cret")))
}

func TestEmployerService_Register_消息失败不影响注册(t *testing.T) {
	t.Parallel()
	idGen, err := snowflake.NewRoleAwareGenerator(0, 2)
	require.NoError(t, err)
	svc := NewService(&fakeRepo{}, idGen, &fakeProducer{err: assert.AnError})

	emp, err := svc.Register(context.Background(), map[string]any{
		formfield.AttrCompanyName: "ACME",
		formfield.AttrEmail:       "hr@acme.example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, emp.Id)
}
