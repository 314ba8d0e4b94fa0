package web

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/hirebook/hirebook/internal/jobseeker/internal/domain"
)

type JobSeeker struct {
	Id               int64          `json:"id"`
	FirstName        string         `json:"firstName"`
	LastName         string         `json:"lastName"`
	FullName         string         `json:"fullName"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Location         string         `json:"location"`
	LetEmployersFind bool           `json:"letEmployersFind"`
	CustomFields     map[string]any `json:"customFields"`
}

func newJobSeeker(seeker domain.JobSeeker) JobSeeker {
	return JobSeeker{
		Id:               seeker.Id,
		FirstName:        seeker.FirstName,
		LastName:         seeker.LastName,
		FullName:         seeker.FullName,
		Email:            seeker.Email,
		Phone:            seeker.Phone,
		Location:         seeker.Location,
		LetEmployersFind: seeker.LetEmployersFind,
		CustomFields:     seeker.CustomFields,
	}
}

type ListSearchableReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListSearchableResp struct {
	JobSeekers []JobSeeker `json:"jobSeekers"`
}

func newListSearchableResp(seekers []domain.JobSeeker) ListSearchableResp {
	return ListSearchableResp{
		JobSeekers: slice.Map(seekers, func(idx int, src domain.JobSeeker) JobSeeker {
			return newJobSeeker(src)
		}),
	}
}
