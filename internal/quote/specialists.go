package quote

// Specialist is the team member assigned to follow up on an assessment.
type Specialist struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
}

var specialists = map[string]Specialist{
	"kitchen": {
		Name:           "Ahmed Al-Mansouri",
		Phone:          "+971 55 241 8447",
		Specialization: "Kitchen Installation Specialist",
	},
	"bathroom": {
		Name:           "Omar Hassan",
		Phone:          "+971 55 241 8448",
		Specialization: "Bathroom Finishing Specialist",
	},
	"flooring": {
		Name:           "Khalid Al-Zahra",
		Phone:          "+971 55 241 8449",
		Specialization: "Flooring & Tiling Specialist",
	},
	"woodwork": {
		Name:           "Saeed Al-Rashid",
		Phone:          "+971 55 241 8450",
		Specialization: "Woodwork & Carpentry Specialist",
	},
	"painting": {
		Name:           "Hassan Al-Maktoum",
		Phone:          "+971 55 241 8451",
		Specialization: "Painting & Finishing Specialist",
	},
	"ac": {
		Name:           "Rashid Al-Nuaimi",
		Phone:          "+971 55 241 8452",
		Specialization: "AC Installation Specialist",
	},
}

// projectManager handles everything without a dedicated specialist.
var projectManager = Specialist{
	Name:           "Mohammed Al-Falasi",
	Phone:          "+971 55 241 8446",
	Specialization: "Project Manager - Complete Finishing",
}

// AssignSpecialist picks the specialist for a project type, falling back to
// the project manager for package or unknown project types.
func AssignSpecialist(projectType string) Specialist {
	if s, ok := specialists[projectType]; ok {
		return s
	}
	return projectManager
}
