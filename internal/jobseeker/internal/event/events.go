package event

const RegistrationEventName = "jobseeker_registered_events"

type RegistrationEvent struct {
	Id               int64  `json:"id"`
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	LetEmployersFind bool   `json:"letEmployersFind"`
}
