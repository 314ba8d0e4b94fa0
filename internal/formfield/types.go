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

package formfield

import (
	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
	"github.com/hirebook/hirebook/internal/formfield/internal/service"
	"github.com/hirebook/hirebook/internal/formfield/internal/web"
)

// 暴露出去给 ioc 和各注册模块使用
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.Service

type FieldDefinition = domain.FieldDefinition
type Context = domain.Context
type Kind = domain.Kind
type Value = domain.Value
type FileUpload = domain.FileUpload
type Submission = domain.Submission
type Control = domain.Control

const (
	ContextEmployer    = domain.ContextEmployer
	ContextJobSeeker   = domain.ContextJobSeeker
	ContextResume      = domain.ContextResume
	ContextApplication = domain.ContextApplication
)

// 规范属性列名，下游实体从装配载荷里按这些键取值
const (
	AttrDesiredJobTitle  = domain.AttrDesiredJobTitle
	AttrJobType          = domain.AttrJobType
	AttrCategories       = domain.AttrCategories
	AttrPersonalSummary  = domain.AttrPersonalSummary
	AttrLocation         = domain.AttrLocation
	AttrPhone            = domain.AttrPhone
	AttrLetEmployersFind = domain.AttrLetEmployersFind
	AttrEmail            = domain.AttrEmail
	AttrCompanyName      = domain.AttrCompanyName
	AttrWebsite          = domain.AttrWebsite
	AttrPassword         = domain.AttrPassword
	AttrFirstName        = domain.AttrFirstName
	AttrLastName         = domain.AttrLastName
	AttrFullName         = domain.AttrFullName
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
