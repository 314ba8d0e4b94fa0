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

// ControlType 渲染出来的控件种类
type ControlType string

const (
	ControlInput       ControlType = "input"
	ControlTextArea    ControlType = "textarea"
	ControlSelect      ControlType = "select"
	ControlMultiSelect ControlType = "multiselect"
	ControlCheckbox    ControlType = "checkbox"
	ControlRadio       ControlType = "radio"
	ControlFile        ControlType = "file"
)

// Control 一个字段的渲染模型。纯数据，渲染过程不产生任何副作用
type Control struct {
	FieldId int64
	// 表单会话里的取值键，customField_<id>
	Key     string
	Caption string
	Type    ControlType
	// input 控件的 type 属性，text/email/password/number/date
	InputType   string
	Label       string
	Placeholder string
	HelpText    string
	Required    bool
	Hidden      bool
	Options     []string
	// 单选下拉的空选项文案，"Select {caption}"
	EmptyOption string
	// file 控件允许的文件类型，PICTURE 限定成图片
	Accept string
	// 已经选中的文件名
	FileName string
	Value    Value
}
