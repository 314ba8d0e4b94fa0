package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/hirebook/hirebook/internal/employer/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidFormResult = ginx.Result{
		Code: errs.InvalidForm.Code,
		Msg:  errs.InvalidForm.Msg,
	}
)
