package errs

var (
	SystemError          = ErrorCode{Code: 516001, Msg: "系统错误"}
	InvalidForm          = ErrorCode{Code: 516002, Msg: "表单内容不合法"}
	DuplicateApplication = ErrorCode{Code: 516003, Msg: "已经投递过这个职位"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
