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

// Employer 雇主账号。列出来的都是从动态字段推导出来的规范属性，
// 整个装配载荷原样存进 CustomFields，后台配了什么字段就有什么键
type Employer struct {
	Id          int64
	CompanyName string
	Website     string
	Email       string
	Phone       string
	Location    string
	LogoURL     string
	// bcrypt 之后的密码，永远不会出现在 CustomFields 里
	PasswordHash string
	CustomFields map[string]any
}
