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
	"fmt"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

// Controls 渲染整个 Context 的控件模型，顺序跟随字段定义。
// Hidden 字段照常渲染，隐藏只是展示态不是安全控制
func (s *formService) Controls(defs []domain.FieldDefinition, values map[string]domain.Value) []domain.Control {
	res := make([]domain.Control, 0, len(defs))
	for _, def := range defs {
		res = append(res, buildControl(def, values[def.Key()]))
	}
	return res
}

func buildControl(def domain.FieldDefinition, val domain.Value) domain.Control {
	c := domain.Control{
		FieldId:     def.Id,
		Key:         def.Key(),
		Caption:     def.Caption,
		Placeholder: def.Placeholder,
		HelpText:    def.HelpText,
		Required:    def.Required,
		Hidden:      def.Hidden,
		Value:       val,
	}
	switch def.Kind {
	case domain.KindTextArea:
		c.Type = domain.ControlTextArea
	case domain.KindDropdown:
		c.Type = domain.ControlSelect
		c.Options = def.ParseOptions()
		c.EmptyOption = fmt.Sprintf("Select %s", def.Caption)
	case domain.KindMultiSelect:
		c.Type = domain.ControlMultiSelect
		c.Options = def.ParseOptions()
	case domain.KindRadio:
		c.Type = domain.ControlRadio
		c.Options = def.ParseOptions()
	case domain.KindCheckbox:
		c.Type = domain.ControlCheckbox
		// 复选框的展示文案优先用 placeholder，没有就用 caption
		c.Label = def.Placeholder
		if c.Label == "" {
			c.Label = def.Caption
		}
	case domain.KindFile:
		c.Type = domain.ControlFile
		if val.File != nil {
			c.FileName = val.File.Name
		}
	case domain.KindPicture:
		c.Type = domain.ControlFile
		c.Accept = "image/*"
		if val.File != nil {
			c.FileName = val.File.Name
		}
	case domain.KindLocation:
		c.Type = domain.ControlInput
		c.InputType = "text"
		if c.Placeholder == "" {
			c.Placeholder = "City, State"
		}
	case domain.KindEmail:
		c.Type = domain.ControlInput
		c.InputType = "email"
	case domain.KindPassword:
		c.Type = domain.ControlInput
		c.InputType = "password"
	case domain.KindNumber:
		c.Type = domain.ControlInput
		c.InputType = "number"
	case domain.KindDate:
		c.Type = domain.ControlInput
		c.InputType = "date"
	default:
		// TEXT、结构性类型、以及所有没见过的 Kind 都按文本框渲染，
		// 渲染环节永远不报错
		c.Type = domain.ControlInput
		c.InputType = "text"
	}
	return c
}
