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
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/resume/internal/domain"
	"github.com/hirebook/hirebook/internal/resume/internal/repository"
	"github.com/hirebook/hirebook/internal/resume/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc       service.Service
	exportSvc service.ExportService
	formSvc   formfield.Service
	logger    *elog.Component
}

func NewHandler(svc service.Service,
	exportSvc service.ExportService,
	formSvc formfield.Service) *Handler {
	return &Handler{
		svc:       svc,
		exportSvc: exportSvc,
		formSvc:   formSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/resume/save", ginx.S(h.Save))
	server.POST("/resume/list", ginx.S(h.List))
	server.POST("/resume/detail", ginx.BS(h.Detail))
	server.POST("/resume/delete", ginx.BS(h.Delete))
	server.GET("/resume/export/docx", h.ExportDocx)
	server.GET("/resume/export/pdf", h.ExportPDF)
}

func (h *Handler) Save(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	sub, err := parseSubmission(ctx)
	if err != nil {
		return invalidFormResult, err
	}
	payload, err := h.formSvc.ProcessSubmission(ctx.Request.Context(),
		formfield.ContextResume, sub)
	if err != nil {
		return systemErrorResult, err
	}
	r, err := h.svc.Create(ctx.Request.Context(), sess.Claims().Uid, payload)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResume(r),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResumeList(rs),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Info(ctx.Request.Context(), req.Id, sess.Claims().Uid)
	switch {
	case errors.Is(err, repository.ErrResumeNotFound),
		errors.Is(err, service.ErrNotTheOwner):
		return notTheOwnerResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: newResume(r),
		}, nil
	}
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ExportDocx(ctx *gin.Context) {
	h.export(ctx,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		h.exportSvc.ExportDocx)
}

func (h *Handler) ExportPDF(ctx *gin.Context) {
	h.export(ctx, "application/pdf", h.exportSvc.ExportPDF)
}

// export 导出是文件下载，不走统一的 JSON 包装
func (h *Handler) export(ctx *gin.Context, contentType string,
	exportFn func(ctx context.Context, r domain.Resume) ([]byte, string, error)) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}
	r, err := h.svc.Info(ctx.Request.Context(), id, sess.Claims().Uid)
	if errors.Is(err, repository.ErrResumeNotFound) ||
		errors.Is(err, service.ErrNotTheOwner) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}
	if err != nil {
		h.logger.Error("查找简历失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	data, filename, err := exportFn(ctx.Request.Context(), r)
	if err != nil {
		h.logger.Error("导出简历失败",
			elog.Int64("id", id),
			elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	ctx.Data(http.StatusOK, contentType, data)
}
