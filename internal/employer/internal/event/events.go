package event

const RegistrationEventName = "employer_registered_events"

type RegistrationEvent struct {
	Id          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
}
