package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/hirebook/hirebook/internal/upload/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	badUploadResult = ginx.Result{
		Code: errs.BadUpload.Code,
		Msg:  errs.BadUpload.Msg,
	}
)
