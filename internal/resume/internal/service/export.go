// Copyright 2024 hirebook
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lukasjarosch/go-docx"

	"github.com/hirebook/hirebook/internal/pkg/pdf"
	"github.com/hirebook/hirebook/internal/resume/internal/domain"
)

//go:generate mockgen -source=./export.go -destination=../mocks/export.mock.go -package=resumemocks -typed ExportService
type ExportService interface {
	// ExportDocx 套模版生成 Word 文档，返回文件内容和文件名
	ExportDocx(ctx context.Context, r domain.Resume) ([]byte, string, error)
	// ExportPDF 渲染 HTML 后交给远端 Chrome 打印
	ExportPDF(ctx context.Context, r domain.Resume) ([]byte, string, error)
}

type exportService struct {
	templateName string
	converter    pdf.Converter
	logger       *elog.Component
}

func NewExportService(templateName string, converter pdf.Converter) ExportService {
	return &exportService{
		templateName: templateName,
		converter:    converter,
		logger:       elog.DefaultLogger,
	}
}

func (svc *exportService) ExportDocx(ctx context.Context, r domain.Resume) ([]byte, string, error) {
	replaceMap := docx.PlaceholderMap{
		"desiredJobTitle": r.DesiredJobTitle,
		"jobType":         r.JobType,
		"categories":      strings.Join(r.Categories, "、"),
		"personalSummary": r.PersonalSummary,
		"location":        r.Location,
	}

	doc, err := docx.Open(svc.templateName)
	if err != nil {
		return nil, "", fmt.Errorf("打开模版docx文件失败: %w", err)
	}
	err = doc.ReplaceAll(replaceMap)
	if err != nil {
		return nil, "", fmt.Errorf("替换元素失败: %w", err)
	}

	// 直接写入内存的方法只有商用包才有，退而求其次落盘再读回来
	docName := filepath.Join(os.TempDir(), fmt.Sprintf("resume_%d.docx", r.Id))
	err = doc.WriteToFile(docName)
	if err != nil {
		return nil, "", fmt.Errorf("生成文件失败: %w", err)
	}
	defer func() {
		if rerr := os.Remove(docName); rerr != nil {
			svc.logger.Error("删除临时文件失败", elog.FieldErr(rerr))
		}
	}()
	data, err := os.ReadFile(docName)
	if err != nil {
		return nil, "", err
	}
	return data, svc.filename(r, "docx"), nil
}

func (svc *exportService) ExportPDF(ctx context.Context, r domain.Resume) ([]byte, string, error) {
	html, err := svc.renderHTML(r)
	if err != nil {
		return nil, "", err
	}
	data, err := svc.converter.ConvertHTMLToPDF(ctx, html,
		pdf.WithTitle(r.DesiredJobTitle))
	if err != nil {
		return nil, "", err
	}
	return data, svc.filename(r, "pdf"), nil
}

func (svc *exportService) renderHTML(r domain.Resume) (string, error) {
	var buf bytes.Buffer
	err := resumeTmpl.Execute(&buf, r)
	if err != nil {
		return "", fmt.Errorf("渲染简历 HTML 失败: %w", err)
	}
	return buf.String(), nil
}

func (svc *exportService) filename(r domain.Resume, ext string) string {
	title := strings.TrimSpace(r.DesiredJobTitle)
	if title == "" {
		title = "resume"
	}
	return fmt.Sprintf("%s_%d.%s", title, r.Id, ext)
}

var resumeTmpl = template.Must(template.New("resume").Parse(`<h1>{{.DesiredJobTitle}}</h1>
<p><strong>{{.JobType}}</strong>{{if .Location}} · {{.Location}}{{end}}</p>
{{if .Categories}}<p>{{range $i, $c := .Categories}}{{if $i}} / {{end}}{{$c}}{{end}}</p>{{end}}
{{if .PersonalSummary}}<h2>个人简介</h2>
<p>{{.PersonalSummary}}</p>{{end}}
`))
