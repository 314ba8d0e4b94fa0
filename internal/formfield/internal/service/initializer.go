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
	"strconv"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

// InitValues 合并语义的初始化：
// 已有非空值原样保留，缺的条目补上该 Kind 的空值，
// 空值字段的 Caption 命中规范属性且规范属性有值时从规范属性回填
func (s *formService) InitValues(defs []domain.FieldDefinition,
	existing map[string]domain.Value, canonical map[string]any) map[string]domain.Value {
	res := make(map[string]domain.Value, len(defs))
	for k, v := range existing {
		res[k] = v
	}
	for _, def := range defs {
		key := def.Key()
		if v, ok := res[key]; ok && !v.IsZero(def.Kind) {
			continue
		}
		val := domain.ZeroValue(def.Kind)
		if attr, ok := CanonicalTarget(def.Caption); ok {
			if cv, exists := canonical[attr]; exists {
				if restored, ok2 := valueFromCanonical(def.Kind, cv); ok2 && !restored.IsZero(def.Kind) {
					val = restored
				}
			}
		}
		res[key] = val
	}
	return res
}

// DecodeValues 把 JSON 解码出来的原始值按字段 Kind 归一化成 Value。
// 类型对不上的值当空值处理，不报错
func (s *formService) DecodeValues(defs []domain.FieldDefinition, raw map[string]any) map[string]domain.Value {
	res := make(map[string]domain.Value, len(defs))
	for _, def := range defs {
		rv, ok := raw[def.Key()]
		if !ok {
			continue
		}
		res[def.Key()] = decodeValue(def.Kind, rv)
	}
	return res
}

func decodeValue(kind domain.Kind, rv any) domain.Value {
	switch kind {
	case domain.KindCheckbox:
		switch v := rv.(type) {
		case bool:
			return domain.Value{Checked: v}
		case string:
			b, _ := strconv.ParseBool(v)
			return domain.Value{Checked: b}
		}
		return domain.Value{}
	case domain.KindMultiSelect:
		switch v := rv.(type) {
		case []string:
			return domain.Value{Selected: append([]string{}, v...)}
		case []any:
			selected := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					selected = append(selected, s)
				}
			}
			return domain.Value{Selected: selected}
		}
		return domain.Value{Selected: []string{}}
	case domain.KindFile, domain.KindPicture:
		// 文件字段在 JSON 里只可能出现已经传完的 URL
		if s, ok := rv.(string); ok {
			return domain.Value{URL: s}
		}
		return domain.Value{}
	default:
		switch v := rv.(type) {
		case string:
			return domain.Value{Text: v}
		case float64:
			// JSON 数字统一是 float64，NUMBER 字段存的还是字符串形态
			return domain.Value{Text: strconv.FormatFloat(v, 'f', -1, 64)}
		case bool:
			return domain.Value{Text: fmt.Sprintf("%t", v)}
		}
		return domain.Value{}
	}
}
