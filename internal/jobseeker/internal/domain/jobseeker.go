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

// JobSeeker 求职者账号
type JobSeeker struct {
	Id        int64
	FirstName string
	LastName  string
	// 表单里既可能是一个 Name 字段也可能拆成 First/Last，两头都兼容
	FullName string
	Email    string
	Phone    string
	Location string
	// 是否允许雇主在人才库里搜到
	LetEmployersFind bool
	PasswordHash     string
	CustomFields     map[string]any
}
