package event

const SubmittedEventName = "application_submitted_events"

type SubmittedEvent struct {
	SN          string `json:"sn"`
	JobId       int64  `json:"jobId"`
	JobSeekerId int64  `json:"jobSeekerId"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
}
