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
	"io"
	"mime/multipart"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/hirebook/hirebook/internal/upload/internal/service"
)

var _ ginx.Handler = &Handler{}

// 单个文件最大 8M，够放简历和 logo 了
const maxFileSize = 8 << 20

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/upload", ginx.W(h.Upload))
	server.POST("/upload/logo", ginx.W(h.UploadLogo))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

// Upload 通用附件上传，落到 uploads 目录
func (h *Handler) Upload(ctx *ginx.Context) (ginx.Result, error) {
	return h.upload(ctx, "uploads")
}

// UploadLogo 图片类上传，落到 logos 目录
func (h *Handler) UploadLogo(ctx *ginx.Context) (ginx.Result, error) {
	return h.upload(ctx, "logos")
}

func (h *Handler) upload(ctx *ginx.Context, folder string) (ginx.Result, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return badUploadResult, err
	}
	if fh.Size > maxFileSize {
		return badUploadResult, nil
	}
	data, err := readAll(fh)
	if err != nil {
		return systemErrorResult, err
	}
	url, err := h.svc.Upload(ctx.Request.Context(), fh.Filename, data, folder)
	if err != nil {
		h.logger.Error("上传文件失败",
			elog.String("name", fh.Filename),
			elog.FieldErr(err))
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UploadResp{URL: url},
	}, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
