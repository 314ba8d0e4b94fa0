package errs

var (
	SystemError  = ErrorCode{Code: 515001, Msg: "系统错误"}
	InvalidForm  = ErrorCode{Code: 515002, Msg: "表单内容不合法"}
	NotTheOwner  = ErrorCode{Code: 515003, Msg: "无权访问该简历"}
	ExportFailed = ErrorCode{Code: 515004, Msg: "导出失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
