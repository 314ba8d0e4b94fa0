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

package application

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/hirebook/hirebook/internal/application/internal/event"
	"github.com/hirebook/hirebook/internal/application/internal/repository"
	"github.com/hirebook/hirebook/internal/application/internal/repository/dao"
	"github.com/hirebook/hirebook/internal/application/internal/service"
	"github.com/hirebook/hirebook/internal/application/internal/web"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/pkg/sequencenumber"
)

func InitModule(db *egorm.Component, q mq.MQ,
	formfieldModule *formfield.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewApplicationRepository,
		sequencenumber.NewGenerator,
		initSubmittedEventProducer,
		service.NewService,
		initHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initHandler(svc service.Service, formfieldModule *formfield.Module) *web.Handler {
	return web.NewHandler(svc, formfieldModule.Svc)
}

func initSubmittedEventProducer(q mq.MQ) event.SubmittedEventProducer {
	producer, err := event.NewSubmittedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewApplicationGORMDAO(db)
}
