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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/hirebook/hirebook/internal/employer/internal/repository"
	"github.com/hirebook/hirebook/internal/employer/internal/service"
	"github.com/hirebook/hirebook/internal/formfield"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.Service
	formSvc formfield.Service
}

func NewHandler(svc service.Service, formSvc formfield.Service) *Handler {
	return &Handler{
		svc:     svc,
		formSvc: formSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/employer/register", ginx.W(h.Register))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/employer/profile", ginx.S(h.Profile))
}

func (h *Handler) Register(ctx *ginx.Context) (ginx.Result, error) {
	sub, err := parseSubmission(ctx)
	if err != nil {
		return invalidFormResult, err
	}
	payload, err := h.formSvc.ProcessSubmission(ctx.Request.Context(),
		formfield.ContextEmployer, sub)
	if err != nil {
		return systemErrorResult, err
	}
	emp, err := h.svc.Register(ctx.Request.Context(), payload)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return duplicateEmailResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEmployer(emp),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	emp, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEmployer(emp),
	}, nil
}
