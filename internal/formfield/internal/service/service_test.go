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

package service_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
	formfieldmocks "github.com/hirebook/hirebook/internal/formfield/internal/mocks"
	"github.com/hirebook/hirebook/internal/formfield/internal/service"
)

// 求职者注册的完整流程：归一化、合并初始化、并发上传、装配
func TestService_ProcessSubmission(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := formfieldmocks.NewMockFieldRepository(ctrl)
	uploader := formfieldmocks.NewMockUploader(ctrl)
	svc := service.NewService(repo, uploader)

	defs := []domain.FieldDefinition{
		{Id: 1, Caption: "Full Name", Kind: domain.KindText, Context: domain.ContextJobSeeker},
		{Id: 2, Caption: "Email Address", Kind: domain.KindEmail, Context: domain.ContextJobSeeker},
		{Id: 3, Caption: "Desired Job Title", Kind: domain.KindText, Context: domain.ContextJobSeeker},
		{Id: 4, Caption: "Job Categories", Kind: domain.KindMultiSelect, Options: "IT\nSales", Context: domain.ContextJobSeeker},
		{Id: 5, Caption: "Resume", Kind: domain.KindFile, Context: domain.ContextJobSeeker},
		{Id: 6, Caption: "Let employers find you", Kind: domain.KindCheckbox, Context: domain.ContextJobSeeker},
	}
	repo.EXPECT().ListFields(gomock.Any(), domain.ContextJobSeeker).Return(defs, nil)
	uploader.EXPECT().Upload(gomock.Any(), "resume.pdf", []byte("pdf-bytes"), "uploads").
		Return("http://cdn/uploads/abc.pdf", nil)

	payload, err := svc.ProcessSubmission(context.Background(), domain.ContextJobSeeker, domain.Submission{
		RawValues: map[string]any{
			"customField_1": "Jane Roe",
			"customField_3": "Go 工程师",
			"customField_4": []any{"IT"},
			"customField_6": true,
		},
		Canonical: map[string]any{
			// 登录会话里带出来的邮箱。表单里没填，
			// 初始化时回填进空的 EMAIL 字段，装配后动态键和规范键都有它
			domain.AttrEmail: "jane@example.com",
		},
		Files: map[string]domain.FileUpload{
			"customField_5": {Name: "resume.pdf", Data: []byte("pdf-bytes")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", payload["customField_1"])
	assert.Equal(t, "jane@example.com", payload["customField_2"])
	assert.Equal(t, "Go 工程师", payload["customField_3"])
	assert.Equal(t, []string{"IT"}, payload["customField_4"])
	assert.Equal(t, "http://cdn/uploads/abc.pdf", payload["customField_5"])
	assert.Equal(t, true, payload["customField_6"])

	assert.Equal(t, "Jane Roe", payload[domain.AttrFullName])
	assert.Equal(t, "jane@example.com", payload[domain.AttrEmail])
	assert.Equal(t, "Go 工程师", payload[domain.AttrDesiredJobTitle])
	assert.Equal(t, []string{"IT"}, payload[domain.AttrCategories])
	assert.Equal(t, true, payload[domain.AttrLetEmployersFind])
}

// 密码的明文只通过规范属性透出给注册流程，动态键不进载荷
func TestService_ProcessSubmission_密码只走规范属性(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := formfieldmocks.NewMockFieldRepository(ctrl)
	svc := service.NewService(repo, formfieldmocks.NewMockUploader(ctrl))

	defs := []domain.FieldDefinition{
		{Id: 1, Caption: "Email Address", Kind: domain.KindEmail, Context: domain.ContextEmployer},
		{Id: 2, Caption: "Password", Kind: domain.KindPassword, Context: domain.ContextEmployer},
	}
	repo.EXPECT().ListFields(gomock.Any(), domain.ContextEmployer).Return(defs, nil)

	payload, err := svc.ProcessSubmission(context.Background(), domain.ContextEmployer, domain.Submission{
		RawValues: map[string]any{
			"customField_1": "hr@acme.example.com",
			"customField_2": "s3cret",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", payload[domain.AttrPassword])
	assert.NotContains(t, payload, "customField_2")
	assert.Equal(t, "hr@acme.example.com", payload["customField_1"])
}

func TestService_ProcessSubmission_文件挂错字段被忽略(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := formfieldmocks.NewMockFieldRepository(ctrl)
	uploader := formfieldmocks.NewMockUploader(ctrl)
	svc := service.NewService(repo, uploader)

	defs := []domain.FieldDefinition{
		{Id: 1, Caption: "Full Name", Kind: domain.KindText, Context: domain.ContextJobSeeker},
	}
	repo.EXPECT().ListFields(gomock.Any(), domain.ContextJobSeeker).Return(defs, nil)

	// 文本字段收不了文件，上传器不应该被调用
	payload, err := svc.ProcessSubmission(context.Background(), domain.ContextJobSeeker, domain.Submission{
		RawValues: map[string]any{"customField_1": "Jane"},
		Files: map[string]domain.FileUpload{
			"customField_1": {Name: "evil.exe", Data: []byte("nope")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", payload["customField_1"])
}

func TestService_ProcessSubmission_取定义失败(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := formfieldmocks.NewMockFieldRepository(ctrl)
	svc := service.NewService(repo, formfieldmocks.NewMockUploader(ctrl))

	mockErr := errors.New("数据库挂了")
	repo.EXPECT().ListFields(gomock.Any(), domain.ContextEmployer).Return(nil, mockErr)

	_, err := svc.ProcessSubmission(context.Background(), domain.ContextEmployer, domain.Submission{})
	assert.ErrorIs(t, err, mockErr)
}

func TestService_ProcessSubmission_空配置(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := formfieldmocks.NewMockFieldRepository(ctrl)
	svc := service.NewService(repo, formfieldmocks.NewMockUploader(ctrl))

	repo.EXPECT().ListFields(gomock.Any(), domain.ContextApplication).
		Return([]domain.FieldDefinition{}, nil)

	payload, err := svc.ProcessSubmission(context.Background(), domain.ContextApplication, domain.Submission{
		Canonical: map[string]any{domain.AttrEmail: "jane@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{domain.AttrEmail: "jane@example.com"}, payload)
}
