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
	"fmt"
	"strings"
)

// Context 动态字段所属的表单
type Context string

const (
	ContextEmployer    Context = "EMPLOYER"
	ContextJobSeeker   Context = "JOB_SEEKER"
	ContextResume      Context = "RESUME"
	ContextApplication Context = "APPLICATION"
)

// Contexts 全部合法的表单上下文，顺序固定，缓存预热按这个顺序来
var Contexts = []Context{
	ContextEmployer,
	ContextJobSeeker,
	ContextResume,
	ContextApplication,
}

func (c Context) String() string {
	return string(c)
}

func (c Context) Valid() bool {
	switch c {
	case ContextEmployer, ContextJobSeeker, ContextResume, ContextApplication:
		return true
	default:
		return false
	}
}

// Kind 字段类型，闭集。渲染的时候未识别的类型一律按 TEXT 兜底，绝对不能报错
type Kind string

const (
	KindText        Kind = "TEXT"
	KindTextArea    Kind = "TEXT_AREA"
	KindEmail       Kind = "EMAIL"
	KindPassword    Kind = "PASSWORD"
	KindNumber      Kind = "NUMBER"
	KindDate        Kind = "DATE"
	KindDropdown    Kind = "DROPDOWN"
	KindMultiSelect Kind = "MULTISELECT"
	KindCheckbox    Kind = "CHECKBOX"
	KindRadio       Kind = "RADIO"
	KindFile        Kind = "FILE"
	KindPicture     Kind = "PICTURE"
	KindLocation    Kind = "LOCATION"

	// 结构性类型，没有独立的渲染逻辑，走 TEXT 兜底
	KindHeading Kind = "HEADING"
	KindDivider Kind = "DIVIDER"
)

// FieldDefinition 管理员配置的动态字段。对引擎来说是只读的
type FieldDefinition struct {
	Id      int64
	Caption string
	Kind    Kind
	// 仅展示层面的必填标记，服务端不做强校验
	Required bool
	// 仅展示层面的隐藏标记，不是安全控制
	Hidden bool
	// 换行分隔的选项，只有 DROPDOWN/MULTISELECT/RADIO 用
	Options     string
	Placeholder string
	HelpText    string
	Context     Context
	// 同一个 Context 内的排序位置
	Order int
}

// Key 表单会话里该字段的取值键
func (f FieldDefinition) Key() string {
	return fmt.Sprintf("customField_%d", f.Id)
}

// ParseOptions 按行拆开，逐行 trim，丢掉空行，顺序不变。
// Options 本身是空串的时候退化成空列表，不算错误
func (f FieldDefinition) ParseOptions() []string {
	lines := strings.Split(f.Options, "\n")
	res := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	return res
}

func (f FieldDefinition) IsFileKind() bool {
	return f.Kind == KindFile || f.Kind == KindPicture
}

func (f FieldDefinition) IsChoiceKind() bool {
	return f.Kind == KindDropdown || f.Kind == KindMultiSelect || f.Kind == KindRadio
}
