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

package ioc

import (
	"github.com/gotomicro/ego/core/econf"

	"github.com/hirebook/hirebook/internal/pkg/pdf"
)

// InitPDFConverter 连远端 Chrome 做 HTML 转 PDF
func InitPDFConverter() pdf.Converter {
	type Config struct {
		RemoteWebSocketURL string `yaml:"remoteWebSocketURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("pdf", &cfg)
	if err != nil {
		panic(err)
	}
	return pdf.NewChromeDPConverter(cfg.RemoteWebSocketURL)
}
