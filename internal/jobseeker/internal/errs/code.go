package errs

var (
	SystemError    = ErrorCode{Code: 514001, Msg: "系统错误"}
	DuplicateEmail = ErrorCode{Code: 514002, Msg: "邮箱已被注册"}
	InvalidForm    = ErrorCode{Code: 514003, Msg: "表单内容不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
