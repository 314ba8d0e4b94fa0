package web

import (
	"github.com/hirebook/hirebook/internal/employer/internal/domain"
)

type Employer struct {
	Id           int64          `json:"id"`
	CompanyName  string         `json:"companyName"`
	Website      string         `json:"website"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Location     string         `json:"location"`
	LogoURL      string         `json:"logoUrl"`
	CustomFields map[string]any `json:"customFields"`
}

func newEmployer(emp domain.Employer) Employer {
	return Employer{
		Id:           emp.Id,
		CompanyName:  emp.CompanyName,
		Website:      emp.Website,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Location:     emp.Location,
		LogoURL:      emp.LogoURL,
		CustomFields: emp.CustomFields,
	}
}
