package employee

// EmployeeResponse is the directory projection exposed to the presentation
// layer. The password hash never leaves the domain.
type EmployeeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone,omitempty"`
	Department        *string `json:"department,omitempty"`
	JobPosition       *string `json:"job_position,omitempty"`
	Manager           *string `json:"manager,omitempty"`
	Location          *string `json:"location,omitempty"`
	CurrentStatus     int     `json:"current_status"`
	StatusDescription string  `json:"status_description"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		Department:        e.Department,
		JobPosition:       e.JobPosition,
		Manager:           e.Manager,
		Location:          e.Location,
		CurrentStatus:     int(e.CurrentStatus),
		StatusDescription: e.CurrentStatus.Description(),
	}
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Count     int                `json:"count"`
}
