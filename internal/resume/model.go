package resume

// Personal holds contact details and the professional summary.
type Personal struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Website      string `json:"website"`
	Portfolio    string `json:"portfolio"`
	GitHub       string `json:"github"`
	LinkedIn     string `json:"linkedin"`
	ProfileImage string `json:"profileImage"`
	Summary      string `json:"summary"`
}

// Experience is one work history entry.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Project is one portfolio project.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	GitHubLink   string `json:"githubLink"`
	LiveLink     string `json:"liveLink"`
	Technologies string `json:"technologies"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// Skill is a single named skill.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdditionalSection is a free-form custom section such as Certifications.
type AdditionalSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Resume is the structured resume record supplied by the editor.
// Entry ids are assigned by the caller and are never generated here.
type Resume struct {
	Personal           Personal            `json:"personal"`
	Experience         []Experience        `json:"experience"`
	Education          []Education         `json:"education"`
	Projects           []Project           `json:"projects"`
	Skills             []Skill             `json:"skills"`
	AdditionalSections []AdditionalSection `json:"additionalSections"`
}

// Clone returns a deep copy of r.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = cloneSlice(r.Experience)
	out.Education = cloneSlice(r.Education)
	out.Projects = cloneSlice(r.Projects)
	out.Skills = cloneSlice(r.Skills)
	out.AdditionalSections = cloneSlice(r.AdditionalSections)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Normalize replaces nil slices with empty ones so the record encodes as arrays.
func (r Resume) Normalize() Resume {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.AdditionalSections == nil {
		r.AdditionalSections = []AdditionalSection{}
	}
	return r
}
