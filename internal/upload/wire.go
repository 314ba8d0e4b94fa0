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

//go:build wireinject

package upload

import (
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"

	"github.com/hirebook/hirebook/internal/upload/internal/service"
	"github.com/hirebook/hirebook/internal/upload/internal/web"
)

func InitModule() (*Module, error) {
	wire.Build(
		initService,
		initAuthHandler,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initService() Service {
	type Config struct {
		Dir     string `yaml:"dir"`
		BaseURL string `yaml:"baseURL"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("upload", &cfg); err != nil {
		panic(err)
	}
	return service.NewLocalStorageService(cfg.Dir, cfg.BaseURL)
}

func initAuthHandler() *AuthHandler {
	type Config struct {
		SecretID  string `yaml:"secretId"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appId"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("cos", &cfg); err != nil {
		panic(err)
	}
	return web.NewAuthHandler(cfg.SecretID, cfg.SecretKey, cfg.AppID, cfg.Bucket, cfg.Region)
}
