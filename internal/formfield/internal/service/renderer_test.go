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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

func TestService_Controls(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		def    domain.FieldDefinition
		val    domain.Value
		assert func(t *testing.T, c domain.Control)
	}{
		{
			name: "下拉带选项和空选项文案",
			def: domain.FieldDefinition{
				Id: 1, Caption: "Job Type", Kind: domain.KindDropdown,
				Options: "Full Time\nPart Time",
			},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, domain.ControlSelect, c.Type)
				assert.Equal(t, []string{"Full Time", "Part Time"}, c.Options)
				assert.Equal(t, "Select Job Type", c.EmptyOption)
			},
		},
		{
			name: "复选框文案优先 placeholder",
			def: domain.FieldDefinition{
				Id: 2, Caption: "Let employers find you", Kind: domain.KindCheckbox,
				Placeholder: "我愿意被雇主联系",
			},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, domain.ControlCheckbox, c.Type)
				assert.Equal(t, "我愿意被雇主联系", c.Label)
			},
		},
		{
			name: "复选框没有 placeholder 用 caption",
			def:  domain.FieldDefinition{Id: 2, Caption: "Remote OK", Kind: domain.KindCheckbox},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, "Remote OK", c.Label)
			},
		},
		{
			name: "图片字段限定 accept 并回显文件名",
			def:  domain.FieldDefinition{Id: 3, Caption: "Company Logo", Kind: domain.KindPicture},
			val:  domain.Value{File: &domain.FileUpload{Name: "logo.png"}},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, domain.ControlFile, c.Type)
				assert.Equal(t, "image/*", c.Accept)
				assert.Equal(t, "logo.png", c.FileName)
			},
		},
		{
			name: "LOCATION 默认占位符",
			def:  domain.FieldDefinition{Id: 4, Caption: "Your Location", Kind: domain.KindLocation},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, domain.ControlInput, c.Type)
				assert.Equal(t, "City, State", c.Placeholder)
			},
		},
		{
			name: "LOCATION 自带占位符不覆盖",
			def: domain.FieldDefinition{
				Id: 4, Caption: "Your Location", Kind: domain.KindLocation,
				Placeholder: "比如 上海",
			},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, "比如 上海", c.Placeholder)
			},
		},
		{
			name: "EMAIL 映射 input type",
			def:  domain.FieldDefinition{Id: 5, Caption: "Email Address", Kind: domain.KindEmail},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, domain.ControlInput, c.Type)
				assert.Equal(t, "email", c.InputType)
			},
		},
		{
			name: "隐藏字段照常渲染",
			def:  domain.FieldDefinition{Id: 6, Caption: "Secret", Kind: domain.KindText, Hidden: true},
			assert: func(t *testing.T, c domain.Control) {
				assert.True(t, c.Hidden)
				assert.Equal(t, domain.ControlInput, c.Type)
			},
		},
		{
			name: "没见过的类型按文本框兜底",
			def:  domain.FieldDefinition{Id: 7, Caption: "Anything", Kind: domain.Kind("WEIRD_TYPE")},
			val:  domain.Value{Text: "回显我"},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, domain.ControlInput, c.Type)
				assert.Equal(t, "text", c.InputType)
				assert.Equal(t, "回显我", c.Value.Text)
			},
		},
		{
			name: "结构性类型也走文本兜底",
			def:  domain.FieldDefinition{Id: 8, Caption: "基本信息", Kind: domain.KindHeading},
			assert: func(t *testing.T, c domain.Control) {
				assert.Equal(t, domain.ControlInput, c.Type)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			controls := svc.Controls([]domain.FieldDefinition{tc.def},
				map[string]domain.Value{tc.def.Key(): tc.val})
			require.Len(t, controls, 1)
			tc.assert(t, controls[0])
		})
	}
}

func TestService_Controls_顺序跟随定义(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	defs := []domain.FieldDefinition{
		{Id: 3, Caption: "C", Kind: domain.KindText},
		{Id: 1, Caption: "A", Kind: domain.KindText},
		{Id: 2, Caption: "B", Kind: domain.KindText},
	}
	controls := svc.Controls(defs, nil)
	require.Len(t, controls, 3)
	assert.Equal(t, []string{"C", "A", "B"},
		[]string{controls[0].Caption, controls[1].Caption, controls[2].Caption})
}
