package errs

var (
	SystemError    = ErrorCode{Code: 513001, Msg: "系统错误"}
	DuplicateEmail = ErrorCode{Code: 513002, Msg: "邮箱已被注册"}
	InvalidForm    = ErrorCode{Code: 513003, Msg: "表单内容不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
