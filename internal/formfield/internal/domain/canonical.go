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

// 规范属性：下游实体真正落库的那批固定列名。
// FieldDefinition 上没有任何显式指向，全靠 Caption 文本匹配推断
const (
	AttrDesiredJobTitle  = "desiredJobTitle"
	AttrJobType          = "jobType"
	AttrCategories       = "categories"
	AttrPersonalSummary  = "personalSummary"
	AttrLocation         = "location"
	AttrPhone            = "phone"
	AttrLetEmployersFind = "letEmployersFind"
	AttrEmail            = "email"
	AttrCompanyName      = "companyName"
	AttrWebsite          = "website"
	AttrPassword         = "password"
	AttrFirstName        = "firstName"
	AttrLastName         = "lastName"
	AttrFullName         = "fullName"
)
