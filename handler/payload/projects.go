package payload

type ProjectsResponse struct {
	Version    string            `json:"version"`
	Categories []ProjectCategory `json:"categories"`
	Data       []ProjectsData    `json:"data"`
}

type ProjectCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ProjectStats struct {
	Stars int    `json:"stars"`
	Views string `json:"views"`
}

type ProjectsData struct {
	UUID         string       `json:"uuid"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Technologies []string     `json:"technologies"`
	LiveURL      string       `json:"live_url"`
	GithubURL    string       `json:"github_url"`
	Featured     bool         `json:"featured"`
	Gradient     string       `json:"gradient"`
	Stats        ProjectStats `json:"stats"`
	Highlights   []string     `json:"highlights"`
}

func (p ProjectsData) GetCategory() string {
	return p.Category
}

type ProjectsListingResponse struct {
	Version    string            `json:"version"`
	Category   string            `json:"category"`
	Categories []ProjectCategory `json:"categories"`
	Data       []ProjectsData    `json:"data"`
	Empty      bool              `json:"empty"`
}
