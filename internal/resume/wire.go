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

package resume

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"

	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/pkg/pdf"
	"github.com/hirebook/hirebook/internal/resume/internal/repository"
	"github.com/hirebook/hirebook/internal/resume/internal/repository/dao"
	"github.com/hirebook/hirebook/internal/resume/internal/service"
	"github.com/hirebook/hirebook/internal/resume/internal/web"
)

func InitModule(db *egorm.Component,
	converter pdf.Converter,
	formfieldModule *formfield.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewResumeRepository,
		service.NewService,
		initExportService,
		initHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initExportService(converter pdf.Converter) service.ExportService {
	type Config struct {
		TemplateFile string `yaml:"templateFile"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("resume", &cfg); err != nil {
		panic(err)
	}
	return service.NewExportService(cfg.TemplateFile, converter)
}

func initHandler(svc service.Service,
	exportSvc service.ExportService,
	formfieldModule *formfield.Module) *web.Handler {
	return web.NewHandler(svc, exportSvc, formfieldModule.Svc)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ResumeDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewResumeGORMDAO(db)
}
