package payload

type ServicesResponse struct {
	Version string        `json:"version"`
	Data    []ServiceData `json:"data"`
	Process []StepData    `json:"process"`
	FAQ     []FAQData     `json:"faq"`
}

type ServiceData struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Gradient     string   `json:"gradient"`
	Popular      bool     `json:"popular"`
}

type StepData struct {
	Step        string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQData struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
