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

// FileUpload 还没上传的文件，整个留在内存里，上传失败的时候用户可以原样重试
type FileUpload struct {
	Name string
	Data []byte
}

// Value 表单会话里一个字段的取值。生效的成员由字段的 Kind 决定：
// CHECKBOX 看 Checked，MULTISELECT 看 Selected，
// FILE/PICTURE 上传前是 File、上传后是 URL，其余都是 Text
type Value struct {
	Text     string     `json:"text,omitempty"`
	Checked  bool       `json:"checked,omitempty"`
	Selected []string   `json:"selected,omitempty"`
	File     *FileUpload `json:"-"`
	URL      string     `json:"url,omitempty"`
}

// ZeroValue 按类型给出初始空值：CHECKBOX 是 false，MULTISELECT 是空列表，其余是空串
func ZeroValue(kind Kind) Value {
	if kind == KindMultiSelect {
		return Value{Selected: []string{}}
	}
	return Value{}
}

// IsZero 该类型意义下的空值判定
func (v Value) IsZero(kind Kind) bool {
	switch kind {
	case KindCheckbox:
		return !v.Checked
	case KindMultiSelect:
		return len(v.Selected) == 0
	case KindFile, KindPicture:
		return v.File == nil && v.URL == ""
	default:
		return v.Text == ""
	}
}

// Payload 提交载荷里该字段最终写出去的值
func (v Value) Payload(kind Kind) any {
	switch kind {
	case KindCheckbox:
		return v.Checked
	case KindMultiSelect:
		if v.Selected == nil {
			return []string{}
		}
		return v.Selected
	case KindFile, KindPicture:
		return v.URL
	default:
		return v.Text
	}
}

// Submission 一次表单提交的原始输入
type Submission struct {
	// 以 customField_<id> 为键的原始值，来自 JSON 解码，还没有按 Kind 归一化
	RawValues map[string]any
	// 会话里已有的规范属性，比如登录用户资料里带出来的手机号
	Canonical map[string]any
	// 以 customField_<id> 为键的待上传文件
	Files map[string]FileUpload
}
