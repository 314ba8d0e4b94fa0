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

	"github.com/hirebook/hirebook/internal/application/internal/domain"
	"github.com/hirebook/hirebook/internal/application/internal/repository"
	"github.com/hirebook/hirebook/internal/application/internal/service"
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

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/application/submit", ginx.S(h.Submit))
	server.POST("/application/list", ginx.S(h.ListMine))
	server.POST("/application/job", ginx.BS(h.ListByJob))
	server.POST("/application/status", ginx.BS(h.UpdateStatus))
}

func (h *Handler) Submit(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	sub, jobId, err := parseSubmission(ctx)
	if err != nil || jobId <= 0 {
		return invalidFormResult, err
	}
	payload, err := h.formSvc.ProcessSubmission(ctx.Request.Context(),
		formfield.ContextApplication, sub)
	if err != nil {
		return systemErrorResult, err
	}
	app, err := h.svc.Submit(ctx.Request.Context(), sess.Claims().Uid, jobId, payload)
	if errors.Is(err, repository.ErrDuplicateApplication) {
		return duplicateApplicationResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplication(app),
	}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplicationList(apps),
	}, nil
}

func (h *Handler) ListByJob(ctx *ginx.Context, req JobListReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Limit > 100 {
		req.Limit = 100
	}
	apps, err := h.svc.ListByJob(ctx.Request.Context(), req.JobId, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplicationList(apps),
	}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx.Request.Context(), req.SN,
		domain.ApplicationStatus(req.Status))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
