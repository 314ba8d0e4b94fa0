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

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
	"github.com/hirebook/hirebook/internal/formfield/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/form")
	g.GET("/fields", ginx.W(h.Fields))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

// Fields 返回一个 Context 的字段定义和初始控件模型。
// 没配置过字段的 Context 返回空列表，前端渲染空态
func (h *Handler) Fields(ctx *ginx.Context) (ginx.Result, error) {
	raw := ctx.Query("context").StringOrDefault("")
	fctx := domain.Context(raw)
	if !fctx.Valid() {
		return invalidContextResult, fmt.Errorf("非法的表单上下文 %q", raw)
	}
	defs, err := h.svc.ListFields(ctx, fctx)
	if err != nil {
		return systemErrorResult, err
	}
	values := h.svc.InitValues(defs, nil, nil)
	controls := h.svc.Controls(defs, values)
	return ginx.Result{
		Data: newFieldsResp(defs, controls),
	}, nil
}
