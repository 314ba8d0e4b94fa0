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

package web

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
	"github.com/hirebook/hirebook/internal/formfield/internal/service"
)

// AdminHandler 后台管理字段定义的入口，挂在 admin 服务上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/form/field")
	g.POST("/save", ginx.B[SaveFieldReq](h.Save))
	g.POST("/delete", ginx.B[DeleteFieldReq](h.Delete))
	g.POST("/list", ginx.B[ListFieldsReq](h.List))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveFieldReq) (ginx.Result, error) {
	def := req.Field.toDomain()
	if !def.Context.Valid() {
		return invalidContextResult, fmt.Errorf("非法的表单上下文 %q", req.Field.Context)
	}
	id, err := h.svc.SaveField(ctx, def)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteFieldReq) (ginx.Result, error) {
	err := h.svc.DeleteField(ctx, req.Id, domain.Context(req.Context))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListFieldsReq) (ginx.Result, error) {
	fctx := domain.Context(req.Context)
	if !fctx.Valid() {
		return invalidContextResult, fmt.Errorf("非法的表单上下文 %q", req.Context)
	}
	defs, err := h.svc.ListFields(ctx, fctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(defs, func(idx int, src domain.FieldDefinition) FieldDefinition {
			return newFieldDefinition(src)
		}),
	}, nil
}
