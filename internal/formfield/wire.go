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

package formfield

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/hirebook/hirebook/internal/formfield/internal/repository"
	"github.com/hirebook/hirebook/internal/formfield/internal/repository/cache"
	"github.com/hirebook/hirebook/internal/formfield/internal/repository/dao"
	"github.com/hirebook/hirebook/internal/formfield/internal/service"
	"github.com/hirebook/hirebook/internal/formfield/internal/web"
	"github.com/hirebook/hirebook/internal/upload"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	cache.NewFieldDefinitionECache,
	repository.NewCachedFieldRepository,
	initService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache, uploadModule *upload.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initService(repo repository.FieldRepository, uploadModule *upload.Module) Service {
	return service.NewService(repo, uploadModule.Svc)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.FieldDefinitionDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewFieldDefinitionGORMDAO(db)
}
