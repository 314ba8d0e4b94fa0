package web

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/hirebook/hirebook/internal/application/internal/domain"
)

type JobListReq struct {
	JobId  int64 `json:"jobId"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type UpdateStatusReq struct {
	SN     string `json:"sn"`
	Status uint8  `json:"status"`
}

type Application struct {
	SN           string         `json:"sn"`
	JobId        int64          `json:"jobId"`
	FullName     string         `json:"fullName"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	ResumeURL    string         `json:"resumeUrl"`
	CustomFields map[string]any `json:"customFields"`
	Status       uint8          `json:"status"`
	Utime        int64          `json:"utime"`
}

func newApplication(app domain.Application) Application {
	return Application{
		SN:           app.SN,
		JobId:        app.JobId,
		FullName:     app.FullName,
		Email:        app.Email,
		Phone:        app.Phone,
		ResumeURL:    app.ResumeURL,
		CustomFields: app.CustomFields,
		Status:       app.Status.ToUint8(),
		Utime:        app.Utime,
	}
}

func newApplicationList(apps []domain.Application) []Application {
	return slice.Map(apps, func(idx int, src domain.Application) Application {
		return newApplication(src)
	})
}
