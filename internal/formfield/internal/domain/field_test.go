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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldDefinition_Key(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "customField_12", FieldDefinition{Id: 12}.Key())
	assert.Equal(t, "customField_0", FieldDefinition{}.Key())
}

func TestFieldDefinition_ParseOptions(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		options string
		want    []string
	}{
		{
			name:    "正常多行",
			options: "Full Time\nPart Time\nContract",
			want:    []string{"Full Time", "Part Time", "Contract"},
		},
		{
			name:    "空行和空白被丢掉但顺序不变",
			options: "  Remote \n\n   \nOn Site\n",
			want:    []string{"Remote", "On Site"},
		},
		{
			name:    "空串退化成空列表",
			options: "",
			want:    []string{},
		},
		{
			name:    "重复选项原样保留",
			options: "A\nA\nB",
			want:    []string{"A", "A", "B"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def := FieldDefinition{Options: tc.options}
			assert.Equal(t, tc.want, def.ParseOptions())
		})
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		kind Kind
		want Value
	}{
		{name: "复选框是 false", kind: KindCheckbox, want: Value{}},
		{name: "多选是空列表", kind: KindMultiSelect, want: Value{Selected: []string{}}},
		{name: "文本是空串", kind: KindText, want: Value{}},
		{name: "没见过的类型也是空串", kind: Kind("WEIRD_TYPE"), want: Value{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val := ZeroValue(tc.kind)
			assert.Equal(t, tc.want, val)
			assert.True(t, val.IsZero(tc.kind))
		})
	}
	// 多选的空值必须是空切片而不是 nil，前端直接遍历
	assert.NotNil(t, ZeroValue(KindMultiSelect).Selected)
}

func TestValue_IsZero(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		kind Kind
		val  Value
		want bool
	}{
		{name: "勾上的复选框非空", kind: KindCheckbox, val: Value{Checked: true}, want: false},
		{name: "没勾的复选框是空", kind: KindCheckbox, val: Value{Text: "忽略我"}, want: true},
		{name: "选了项的多选非空", kind: KindMultiSelect, val: Value{Selected: []string{"IT"}}, want: false},
		{name: "文件字段挂了待传文件非空", kind: KindFile, val: Value{File: &FileUpload{Name: "a.pdf"}}, want: false},
		{name: "文件字段只有 URL 也非空", kind: KindPicture, val: Value{URL: "http://x/a.png"}, want: false},
		{name: "文本空串是空", kind: KindText, val: Value{}, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.val.IsZero(tc.kind))
		})
	}
}

func TestValue_Payload(t *testing.T) {
	t.Parallel()
	assert.Equal(t, true, Value{Checked: true}.Payload(KindCheckbox))
	assert.Equal(t, []string{"a"}, Value{Selected: []string{"a"}}.Payload(KindMultiSelect))
	// nil 切片写出去也是空列表
	assert.Equal(t, []string{}, Value{}.Payload(KindMultiSelect))
	assert.Equal(t, "http://x/a.pdf", Value{URL: "http://x/a.pdf"}.Payload(KindFile))
	assert.Equal(t, "hello", Value{Text: "hello"}.Payload(KindText))
	// 没见过的类型按文本走
	assert.Equal(t, "hello", Value{Text: "hello"}.Payload(Kind("WEIRD_TYPE")))
}
