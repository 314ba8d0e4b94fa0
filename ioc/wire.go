//go:build wireinject

package ioc

import (
	"github.com/google/wire"

	"github.com/hirebook/hirebook/internal/application"
	"github.com/hirebook/hirebook/internal/employer"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/jobseeker"
	"github.com/hirebook/hirebook/internal/resume"
	"github.com/hirebook/hirebook/internal/upload"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ,
	InitAccountIDGenerator, InitPDFConverter)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		upload.InitModule,
		formfield.InitModule,
		employer.InitModule,
		jobseeker.InitModule,
		resume.InitModule,
		application.InitModule,
		wire.FieldsOf(new(*upload.Module), "Hdl", "AuthHdl"),
		wire.FieldsOf(new(*formfield.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*employer.Module), "Hdl"),
		wire.FieldsOf(new(*jobseeker.Module), "Hdl"),
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		wire.FieldsOf(new(*application.Module), "Hdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
