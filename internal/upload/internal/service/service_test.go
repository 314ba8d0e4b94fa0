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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageService_Upload(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	svc := NewLocalStorageService(dir, "http://localhost:8002/static/")

	testCases := []struct {
		name    string
		file    string
		data    []byte
		folder  string
		wantErr error
		// 校验返回的 URL 和落盘内容
		after func(t *testing.T, url string)
	}{
		{
			name:   "上传简历",
			file:   "我的简历.PDF",
			data:   []byte("resume-bytes"),
			folder: "uploads",
			after: func(t *testing.T, url string) {
				assert.True(t, strings.HasPrefix(url, "http://localhost:8002/static/uploads/"))
				assert.True(t, strings.HasSuffix(url, ".pdf"))
				key := url[strings.LastIndex(url, "/")+1:]
				data, err := os.ReadFile(filepath.Join(dir, "uploads", key))
				require.NoError(t, err)
				assert.Equal(t, []byte("resume-bytes"), data)
			},
		},
		{
			name:   "目录穿越被清理",
			file:   "logo.png",
			data:   []byte{0x89, 0x50},
			folder: "../../etc",
			after: func(t *testing.T, url string) {
				assert.True(t, strings.HasPrefix(url, "http://localhost:8002/static/etc/"))
				_, err := os.Stat(filepath.Join(dir, "etc"))
				require.NoError(t, err)
			},
		},
		{
			name:   "空目录回退到 uploads",
			file:   "a.txt",
			data:   []byte("x"),
			folder: "",
			after: func(t *testing.T, url string) {
				assert.True(t, strings.HasPrefix(url, "http://localhost:8002/static/uploads/"))
			},
		},
		{
			name:    "空文件",
			file:    "empty.txt",
			data:    nil,
			folder:  "uploads",
			wantErr: ErrEmptyFile,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url, err := svc.Upload(context.Background(), tc.file, tc.data, tc.folder)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.after(t, url)
		})
	}
}

func TestLocalStorageService_Upload_两次上传互不覆盖(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	svc := NewLocalStorageService(dir, "http://localhost:8002/static")
	u1, err := svc.Upload(context.Background(), "a.png", []byte("one"), "logos")
	require.NoError(t, err)
	u2, err := svc.Upload(context.Background(), "a.png", []byte("two"), "logos")
	require.NoError(t, err)
	assert.NotEqual(t, u1, u2)
}

func TestLocalStorageService_Upload_已取消的上下文(t *testing.T) {
	t.Parallel()
	svc := NewLocalStorageService(t.TempDir(), "http://localhost:8002/static")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Upload(ctx, "a.png", []byte("one"), "logos")
	assert.ErrorIs(t, err, context.Canceled)
}
