package web

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/hirebook/hirebook/internal/resume/internal/domain"
)

type IdReq struct {
	Id int64 `json:"id"`
}

type Resume struct {
	Id              int64          `json:"id"`
	DesiredJobTitle string         `json:"desiredJobTitle"`
	JobType         string         `json:"jobType"`
	Categories      []string       `json:"categories"`
	PersonalSummary string         `json:"personalSummary"`
	Location        string         `json:"location"`
	FileURL         string         `json:"fileUrl"`
	CustomFields    map[string]any `json:"customFields"`
	Utime           int64          `json:"utime"`
}

func newResume(r domain.Resume) Resume {
	return Resume{
		Id:              r.Id,
		DesiredJobTitle: r.DesiredJobTitle,
		JobType:         r.JobType,
		Categories:      r.Categories,
		PersonalSummary: r.PersonalSummary,
		Location:        r.Location,
		FileURL:         r.FileURL,
		CustomFields:    r.CustomFields,
		Utime:           r.Utime,
	}
}

func newResumeList(rs []domain.Resume) []Resume {
	return slice.Map(rs, func(idx int, src domain.Resume) Resume {
		return newResume(src)
	})
}
