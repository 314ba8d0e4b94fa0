package errs

var (
	SystemError    = ErrorCode{Code: 511001, Msg: "系统错误"}
	InvalidContext = ErrorCode{Code: 511002, Msg: "非法的表单上下文"}
	SubmitFailed   = ErrorCode{Code: 511003, Msg: "提交失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
