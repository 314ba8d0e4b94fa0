package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/hirebook/hirebook/internal/application/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidFormResult = ginx.Result{
		Code: errs.InvalidForm.Code,
		Msg:  errs.InvalidForm.Msg,
	}
	duplicateApplicationResult = ginx.Result{
		Code: errs.DuplicateApplication.Code,
		Msg:  errs.DuplicateApplication.Msg,
	}
)
