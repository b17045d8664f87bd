package dto

type CreateAcademyRequest struct {
	Name         string  `json:"name"`
	Season       string  `json:"season"`
	HasLevels    bool    `json:"has_levels"`
	TeacherEmail *string `json:"teacher_email,omitempty"`
}

type UpdateAcademyRequest struct {
	Name         string  `json:"name"`
	HasLevels    bool    `json:"has_levels"`
	TeacherEmail *string `json:"teacher_email,omitempty"`
}

type CreateLevelRequest struct {
	Name         string  `json:"name"`
	TeacherEmail *string `json:"teacher_email,omitempty"`
}

type UpdateLevelRequest struct {
	Name         string  `json:"name"`
	TeacherEmail *string `json:"teacher_email,omitempty"`
}
