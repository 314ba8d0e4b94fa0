package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/hirebook/hirebook/internal/resume/internal/errs"
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
	notTheOwnerResult = ginx.Result{
		Code: errs.NotTheOwner.Code,
		Msg:  errs.NotTheOwner.Msg,
	}
)
