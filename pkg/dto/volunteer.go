package dto

type LogVolunteerHoursRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Activity string  `json:"activity"`
	Hours    float64 `json:"hours"`
	ServedOn string  `json:"served_on"`
}

type VolunteerTotalResponse struct {
	Email string  `json:"email"`
	Hours float64 `json:"hours"`
}
