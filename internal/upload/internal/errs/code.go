package errs

var (
	SystemError = ErrorCode{Code: 512001, Msg: "系统错误"}
	BadUpload   = ErrorCode{Code: 512002, Msg: "上传内容不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
