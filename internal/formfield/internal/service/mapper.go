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
	"strings"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

// Caption 到规范属性的推断规则。整个系统里只有这一张表，
// 各注册页不许再自己抄一份。
// 顺序敏感：从上往下第一条命中即返回，
// 比如 "Desired Job Title" 必须先于 "job"+"type" 和裸 "name" 规则。
// 多个字段撞上同一个规范属性时按渲染顺序后写的赢，这是沿用下来的行为
type captionRule struct {
	// 全部出现才算命中，对小写后的 caption 做子串判断
	terms []string
	attr  string
}

var captionRules = []captionRule{
	{terms: []string{"desired", "job", "title"}, attr: domain.AttrDesiredJobTitle},
	{terms: []string{"job", "type"}, attr: domain.AttrJobType},
	{terms: []string{"categor"}, attr: domain.AttrCategories},
	{terms: []string{"personal", "summary"}, attr: domain.AttrPersonalSummary},
	{terms: []string{"location"}, attr: domain.AttrLocation},
	{terms: []string{"phone"}, attr: domain.AttrPhone},
	{terms: []string{"employer", "find"}, attr: domain.AttrLetEmployersFind},
	{terms: []string{"email"}, attr: domain.AttrEmail},
	{terms: []string{"company"}, attr: domain.AttrCompanyName},
	{terms: []string{"website"}, attr: domain.AttrWebsite},
	{terms: []string{"password"}, attr: domain.AttrPassword},
	{terms: []string{"first name"}, attr: domain.AttrFirstName},
	{terms: []string{"last name"}, attr: domain.AttrLastName},
	{terms: []string{"name"}, attr: domain.AttrFullName},
}

// CanonicalTarget 根据 caption 推断规范属性。没命中任何规则就返回 false，
// 调用方什么都不用做
func CanonicalTarget(caption string) (string, bool) {
	lower := strings.ToLower(caption)
	for _, r := range captionRules {
		if containsAll(lower, r.terms) {
			return r.attr, true
		}
	}
	return "", false
}

func containsAll(s string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}

// canonicalValue 字段值写到规范属性上的形态。
// letEmployersFind 固定转成布尔，其余按 Kind 的载荷形态
func canonicalValue(def domain.FieldDefinition, val domain.Value, attr string) any {
	if attr == domain.AttrLetEmployersFind {
		return coerceBool(def.Kind, val)
	}
	return val.Payload(def.Kind)
}

func coerceBool(kind domain.Kind, val domain.Value) bool {
	if kind == domain.KindCheckbox {
		return val.Checked
	}
	switch strings.ToLower(strings.TrimSpace(val.Text)) {
	case "true", "yes", "1", "on":
		return true
	default:
		return false
	}
}

// valueFromCanonical 读方向的兜底：动态字段自己没值的时候，
// 把会话里已有的规范属性值还原成该字段类型的取值
func valueFromCanonical(kind domain.Kind, cv any) (domain.Value, bool) {
	switch kind {
	case domain.KindCheckbox:
		switch v := cv.(type) {
		case bool:
			return domain.Value{Checked: v}, true
		case string:
			return domain.Value{Checked: v == "true" || v == "yes" || v == "1"}, true
		}
	case domain.KindMultiSelect:
		switch v := cv.(type) {
		case []string:
			return domain.Value{Selected: append([]string{}, v...)}, true
		case []any:
			res := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					res = append(res, s)
				}
			}
			return domain.Value{Selected: res}, true
		}
	case domain.KindFile, domain.KindPicture:
		if s, ok := cv.(string); ok {
			return domain.Value{URL: s}, true
		}
	default:
		if s, ok := cv.(string); ok {
			return domain.Value{Text: s}, true
		}
	}
	return domain.Value{}, false
}

func (s *formService) CanonicalTarget(caption string) (string, bool) {
	return CanonicalTarget(caption)
}

func (s *formService) ApplyChange(def domain.FieldDefinition, val domain.Value,
	values map[string]domain.Value, canonical map[string]any) {
	values[def.Key()] = val
	if attr, ok := CanonicalTarget(def.Caption); ok {
		canonical[attr] = canonicalValue(def, val, attr)
	}
}
