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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebook/hirebook/internal/pkg/pdf"
	"github.com/hirebook/hirebook/internal/resume/internal/domain"
)

type fakeConverter struct {
	html string
	opts pdf.Options
}

func (f *fakeConverter) ConvertHTMLToPDF(_ context.Context, html string, opts ...pdf.Option) ([]byte, error) {
	f.html = html
	for _, opt := range opts {
		opt(&f.opts)
	}
	return []byte("%PDF-1.7"), nil
}

func TestExportService_ExportPDF(t *testing.T) {
	t.Parallel()
	converter := &fakeConverter{}
	svc := NewExportService("doc/resume_template.docx", converter)

	data, filename, err := svc.ExportPDF(context.Background(), domain.Resume{
		Id:              12,
		DesiredJobTitle: "Backend Engineer",
		JobType:         "全职",
		Categories:      []string{"后端", "基础架构"},
		PersonalSummary: "十年 Go 开发经验",
		Location:        "Hangzhou",
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7"), data)
	assert.Equal(t, "Backend Engineer_12.pdf", filename)
	assert.Equal(t, "Backend Engineer", converter.opts.Title)
	assert.Contains(t, converter.html, "<h1>Backend Engineer</h1>")
	assert.Contains(t, converter.html, "后端 / 基础架构")
	assert.Contains(t, converter.html, "个人简介")
}

func TestExportService_文件名兜底(t *testing.T) {
	t.Parallel()
	svc := &exportService{}
	assert.Equal(t, "resume_3.docx", svc.filename(domain.Resume{Id: 3}, "docx"))
}
