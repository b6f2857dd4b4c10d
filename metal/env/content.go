package env

import "path/filepath"

const DefaultPostsDir = "./storage/posts"
const DefaultFixturesDir = "./storage/fixture"
const DefaultCarouselSchedule = "@every 5s"

// ContentEnvironment locates the static site content: the markup articles
// and the JSON fixtures for projects, reviews and services.
type ContentEnvironment struct {
	PostsDir         string `validate:"required"`
	FixturesDir      string `validate:"required"`
	CarouselSchedule string `validate:"required,cron"`
}

func (e ContentEnvironment) FixturePath(name string) string {
	return filepath.Join(e.FixturesDir, name+".json")
}
