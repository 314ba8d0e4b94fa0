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
	"go.uber.org/mock/gomock"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
	formfieldmocks "github.com/hirebook/hirebook/internal/formfield/internal/mocks"
	"github.com/hirebook/hirebook/internal/formfield/internal/service"
)

func newTestService(t *testing.T) service.Service {
	ctrl := gomock.NewController(t)
	return service.NewService(
		formfieldmocks.NewMockFieldRepository(ctrl),
		formfieldmocks.NewMockUploader(ctrl))
}

func TestService_InitValues(t *testing.T) {
	t.Parallel()
	defs := []domain.FieldDefinition{
		{Id: 1, Caption: "Full Name", Kind: domain.KindText},
		{Id: 2, Caption: "Let employers find you", Kind: domain.KindCheckbox},
		{Id: 3, Caption: "Job Categories", Kind: domain.KindMultiSelect, Options: "IT\nSales"},
		{Id: 4, Caption: "Phone Number", Kind: domain.KindText},
	}

	testCases := []struct {
		name      string
		existing  map[string]domain.Value
		canonical map[string]any
		want      map[string]domain.Value
	}{
		{
			name: "空会话按类型给空值",
			want: map[string]domain.Value{
				"customField_1": {},
				"customField_2": {},
				"customField_3": {Selected: []string{}},
				"customField_4": {},
			},
		},
		{
			name: "已填的值原样保留_缺的补空值",
			existing: map[string]domain.Value{
				"customField_1": {Text: "Jane Roe"},
				"customField_2": {Checked: true},
			},
			want: map[string]domain.Value{
				"customField_1": {Text: "Jane Roe"},
				"customField_2": {Checked: true},
				"customField_3": {Selected: []string{}},
				"customField_4": {},
			},
		},
		{
			name: "自己是空值时从规范属性回填",
			existing: map[string]domain.Value{
				"customField_1": {Text: "Jane Roe"},
			},
			canonical: map[string]any{
				domain.AttrPhone:            "13800000000",
				domain.AttrLetEmployersFind: true,
				domain.AttrCategories:       []string{"IT"},
			},
			want: map[string]domain.Value{
				"customField_1": {Text: "Jane Roe"},
				"customField_2": {Checked: true},
				"customField_3": {Selected: []string{"IT"}},
				"customField_4": {Text: "13800000000"},
			},
		},
		{
			name: "规范属性不覆盖已填的值",
			existing: map[string]domain.Value{
				"customField_4": {Text: "13911111111"},
			},
			canonical: map[string]any{
				domain.AttrPhone: "13800000000",
			},
			want: map[string]domain.Value{
				"customField_1": {},
				"customField_2": {},
				"customField_3": {Selected: []string{}},
				"customField_4": {Text: "13911111111"},
			},
		},
		{
			name: "不认识的旧键保留下来",
			existing: map[string]domain.Value{
				"customField_99": {Text: "被删掉的字段"},
			},
			want: map[string]domain.Value{
				"customField_1":  {},
				"customField_2":  {},
				"customField_3":  {Selected: []string{}},
				"customField_4":  {},
				"customField_99": {Text: "被删掉的字段"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			got := svc.InitValues(defs, tc.existing, tc.canonical)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_InitValues_可重复执行(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	defs := []domain.FieldDefinition{
		{Id: 1, Caption: "Personal Summary", Kind: domain.KindTextArea},
	}
	first := svc.InitValues(defs, nil, nil)
	first["customField_1"] = domain.Value{Text: "多年摸鱼经验"}
	second := svc.InitValues(defs, first, nil)
	assert.Equal(t, domain.Value{Text: "多年摸鱼经验"}, second["customField_1"])
}

func TestService_DecodeValues(t *testing.T) {
	t.Parallel()
	defs := []domain.FieldDefinition{
		{Id: 1, Caption: "Full Name", Kind: domain.KindText},
		{Id: 2, Caption: "Remote OK", Kind: domain.KindCheckbox},
		{Id: 3, Caption: "Job Categories", Kind: domain.KindMultiSelect},
		{Id: 4, Caption: "Expected Salary", Kind: domain.KindNumber},
		{Id: 5, Caption: "Resume", Kind: domain.KindFile},
		{Id: 6, Caption: "Anything", Kind: domain.Kind("WEIRD_TYPE")},
	}

	testCases := []struct {
		name string
		raw  map[string]any
		want map[string]domain.Value
	}{
		{
			name: "各类型正常归一化",
			raw: map[string]any{
				"customField_1": "Jane",
				"customField_2": true,
				// JSON 解码出来的数组是 []any
				"customField_3": []any{"IT", "Sales"},
				// JSON 数字统一是 float64
				"customField_4": float64(20000),
				"customField_5": "http://cdn/resume.pdf",
				"customField_6": "anything goes",
			},
			want: map[string]domain.Value{
				"customField_1": {Text: "Jane"},
				"customField_2": {Checked: true},
				"customField_3": {Selected: []string{"IT", "Sales"}},
				"customField_4": {Text: "20000"},
				"customField_5": {URL: "http://cdn/resume.pdf"},
				"customField_6": {Text: "anything goes"},
			},
		},
		{
			name: "类型对不上按空值处理不报错",
			raw: map[string]any{
				"customField_2": []any{"不是布尔"},
				"customField_3": "不是数组",
				"customField_5": float64(42),
			},
			want: map[string]domain.Value{
				"customField_2": {},
				"customField_3": {Selected: []string{}},
				"customField_5": {},
			},
		},
		{
			name: "没提交的键不出现在结果里",
			raw:  map[string]any{},
			want: map[string]domain.Value{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			assert.Equal(t, tc.want, svc.DecodeValues(defs, tc.raw))
		})
	}
}

func TestService_ApplyChange(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		def           domain.FieldDefinition
		val           domain.Value
		wantValues    map[string]domain.Value
		wantCanonical map[string]any
	}{
		{
			name:       "文本字段同步写规范属性",
			def:        domain.FieldDefinition{Id: 7, Caption: "Desired Job Title", Kind: domain.KindText},
			val:        domain.Value{Text: "Go 工程师"},
			wantValues: map[string]domain.Value{"customField_7": {Text: "Go 工程师"}},
			wantCanonical: map[string]any{
				domain.AttrDesiredJobTitle: "Go 工程师",
			},
		},
		{
			name:       "letEmployersFind 复选框转布尔",
			def:        domain.FieldDefinition{Id: 8, Caption: "Let employers find you", Kind: domain.KindCheckbox},
			val:        domain.Value{Checked: true},
			wantValues: map[string]domain.Value{"customField_8": {Checked: true}},
			wantCanonical: map[string]any{
				domain.AttrLetEmployersFind: true,
			},
		},
		{
			name:       "letEmployersFind 文本形态也转布尔",
			def:        domain.FieldDefinition{Id: 8, Caption: "Let Employers Find Me", Kind: domain.KindText},
			val:        domain.Value{Text: "Yes"},
			wantValues: map[string]domain.Value{"customField_8": {Text: "Yes"}},
			wantCanonical: map[string]any{
				domain.AttrLetEmployersFind: true,
			},
		},
		{
			name:          "没命中规则时只写字段值",
			def:           domain.FieldDefinition{Id: 9, Caption: "Random Thing", Kind: domain.KindText},
			val:           domain.Value{Text: "whatever"},
			wantValues:    map[string]domain.Value{"customField_9": {Text: "whatever"}},
			wantCanonical: map[string]any{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)
			values := make(map[string]domain.Value)
			canonical := make(map[string]any)
			svc.ApplyChange(tc.def, tc.val, values, canonical)
			assert.Equal(t, tc.wantValues, values)
			assert.Equal(t, tc.wantCanonical, canonical)
		})
	}
}
