package payload

import "github.com/StevenGabule/portfolio/pkg/carousel"

type ReviewsResponse struct {
	Version string       `json:"version"`
	Stats   []StatData   `json:"stats"`
	Data    []ReviewData `json:"data"`
}

type StatData struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ReviewData struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
	ProjectType string `json:"project_type"`
	Avatar      string `json:"avatar"`
	Gradient    string `json:"gradient"`
	Date        string `json:"date"`
	Verified    bool   `json:"verified"`
	Featured    bool   `json:"featured"`
}

type ReviewsListingResponse struct {
	Version   string            `json:"version"`
	Stats     []StatData        `json:"stats"`
	Data      []ReviewData      `json:"data"`
	Spotlight carousel.Snapshot `json:"spotlight"`
}

type SpotlightAction string

const (
	SpotlightPause    SpotlightAction = "pause"
	SpotlightResume   SpotlightAction = "resume"
	SpotlightSelect   SpotlightAction = "select"
	SpotlightNext     SpotlightAction = "next"
	SpotlightPrevious SpotlightAction = "previous"
)

// SpotlightRequest carries the viewer's own position. Without one the action
// applies to the scheduled default the viewer was shown.
type SpotlightRequest struct {
	Action  SpotlightAction    `json:"action" validate:"required,oneof=pause resume select next previous"`
	Index   *int               `json:"index" validate:"required_if=Action select,omitempty,min=0"`
	Current *SpotlightPosition `json:"current"`
}

type SpotlightPosition struct {
	Index *int           `json:"index" validate:"required,min=0"`
	State carousel.State `json:"state" validate:"required,oneof=auto_playing paused"`
}
