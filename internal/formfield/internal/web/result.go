package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/hirebook/hirebook/internal/formfield/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidContextResult = ginx.Result{
		Code: errs.InvalidContext.Code,
		Msg:  errs.InvalidContext.Msg,
	}
)
