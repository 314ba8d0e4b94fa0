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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
)

// Service 把一份文件内容存下来，换回一个外部可访问的 URL。
// 同一份内容重复上传会得到两个不同的新对象，天然幂等，失败重试没有副作用
//
//go:generate mockgen -source=./service.go -destination=../../mocks/upload.mock.go -package=uploadmocks -typed Service
type Service interface {
	Upload(ctx context.Context, name string, data []byte, folder string) (string, error)
}

var ErrEmptyFile = errors.New("空文件")

// LocalStorageService 落到本地磁盘的实现，单机部署够用了。
// 对象键用 shortuuid，原始文件名只保留扩展名
type LocalStorageService struct {
	baseDir string
	baseURL string
}

func NewLocalStorageService(baseDir, baseURL string) *LocalStorageService {
	return &LocalStorageService{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStorageService) Upload(ctx context.Context, name string, data []byte, folder string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	folder = sanitizeFolder(folder)
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "创建上传目录失败")
	}
	key := shortuuid.New() + strings.ToLower(filepath.Ext(name))
	if err := os.WriteFile(filepath.Join(dir, key), data, 0o644); err != nil {
		return "", errors.Wrap(err, "写入文件失败")
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, folder, key), nil
}

// sanitizeFolder 目录名只认单层，去掉路径穿越的可能
func sanitizeFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	folder = strings.ReplaceAll(folder, "..", "")
	folder = strings.ReplaceAll(folder, "/", "")
	folder = strings.ReplaceAll(folder, "\\", "")
	if folder == "" {
		folder = "uploads"
	}
	return folder
}
