package web

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/ecodeclub/ginx"

	"github.com/hirebook/hirebook/internal/formfield"
)

// 单个附件最大 8M
const maxFileSize = 8 << 20

// parseSubmission 解析简历表单的 multipart 请求：
// form 部分是 JSON 的字段取值和会话规范属性，文件部分以 customField_<id> 为键
func parseSubmission(ctx *ginx.Context) (formfield.Submission, error) {
	var req struct {
		Values    map[string]any `json:"values"`
		Canonical map[string]any `json:"canonical"`
	}
	if data := ctx.Request.FormValue("form"); data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return formfield.Submission{}, err
		}
	}
	sub := formfield.Submission{
		RawValues: req.Values,
		Canonical: req.Canonical,
		Files:     map[string]formfield.FileUpload{},
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		// 纯 JSON 值没有文件也是合法提交
		return sub, nil
	}
	for key, headers := range form.File {
		if !strings.HasPrefix(key, "customField_") || len(headers) == 0 {
			continue
		}
		fh := headers[0]
		if fh.Size > maxFileSize {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return formfield.Submission{}, err
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return formfield.Submission{}, err
		}
		sub.Files[key] = formfield.FileUpload{Name: fh.Filename, Data: data}
	}
	return sub, nil
}
