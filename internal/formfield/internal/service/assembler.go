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

	"golang.org/x/sync/errgroup"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

// 文件字段上传到的目录。PICTURE 走 logos，对应雇主 logo 那条上传通道
const (
	fileFolder    = "uploads"
	pictureFolder = "logos"
)

// Assemble 装配最终提交载荷。
// 所有带待传文件的字段并发上传，整体耗时对齐最慢的那一个；
// 任何一个失败就整体放弃，载荷不会构建，调用方的内存状态原样保留可以重试。
// 已经传成功的文件不回滚，存储写入是幂等的新对象，留着没有副作用
func (s *formService) Assemble(ctx context.Context, defs []domain.FieldDefinition,
	values map[string]domain.Value, canonical map[string]any) (map[string]any, error) {
	pending := make([]domain.FieldDefinition, 0, 2)
	for _, def := range defs {
		if def.IsFileKind() && values[def.Key()].File != nil {
			pending = append(pending, def)
		}
	}

	urls := make([]string, len(pending))
	eg, egCtx := errgroup.WithContext(ctx)
	for i := range pending {
		def := pending[i]
		idx := i
		eg.Go(func() error {
			file := values[def.Key()].File
			folder := fileFolder
			if def.Kind == domain.KindPicture {
				folder = pictureFolder
			}
			url, err := s.uploader.Upload(egCtx, file.Name, file.Data, folder)
			if err != nil {
				// 报错信息里带上字段的 caption，用户才知道是哪个文件没传上去
				return fmt.Errorf("上传 %q 失败: %w", def.Caption, err)
			}
			urls[idx] = url
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	uploaded := make(map[string]string, len(pending))
	for i, def := range pending {
		uploaded[def.Key()] = urls[i]
	}

	payload := make(map[string]any, len(defs)+len(canonical))
	for _, def := range defs {
		key := def.Key()
		val := values[key]
		if url, ok := uploaded[key]; ok {
			val.URL = url
		}
		// 密码字段的明文只通过规范属性透出给注册流程做哈希，
		// 不挂在动态键下，custom_fields JSON 里不能有明文
		if def.Kind != domain.KindPassword {
			payload[key] = val.Payload(def.Kind)
		}
		// 规范属性：字段推导出来的非空值优先。
		// 多个字段命中同一个属性时后渲染的覆盖先渲染的，沿用既有行为
		if attr, ok := CanonicalTarget(def.Caption); ok && !val.IsZero(def.Kind) {
			payload[attr] = canonicalValue(def, val, attr)
		}
	}
	// 会话里已有的规范属性只在字段没推导出值的时候兜底，
	// 和读方向 InitValues 的回填顺序保持一致
	for attr, v := range canonical {
		if _, ok := payload[attr]; !ok {
			payload[attr] = v
		}
	}
	return payload, nil
}
