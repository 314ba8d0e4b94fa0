package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"

	"github.com/hirebook/hirebook/internal/application"
	"github.com/hirebook/hirebook/internal/employer"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/jobseeker"
	"github.com/hirebook/hirebook/internal/pkg/middleware"
	"github.com/hirebook/hirebook/internal/resume"
	"github.com/hirebook/hirebook/internal/upload"
)

func initGinxServer(sp session.Provider,
	formHdl *formfield.Handler,
	uploadHdl *upload.Handler,
	uploadAuthHdl *upload.AuthHandler,
	employerHdl *employer.Handler,
	jobSeekerHdl *jobseeker.Handler,
	resumeHdl *resume.Handler,
	applicationHdl *application.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "hirebook.cn")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 本地存储的附件直接静态托管
	if dir := econf.GetString("upload.dir"); dir != "" {
		res.Static("/static", dir)
	}
	formHdl.PublicRoutes(res.Engine)
	uploadHdl.PublicRoutes(res.Engine)
	employerHdl.PublicRoutes(res.Engine)
	jobSeekerHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	uploadAuthHdl.PrivateRoutes(res.Engine)
	employerHdl.PrivateRoutes(res.Engine)
	jobSeekerHdl.PrivateRoutes(res.Engine)
	resumeHdl.PrivateRoutes(res.Engine)
	applicationHdl.PrivateRoutes(res.Engine)
	return res
}
