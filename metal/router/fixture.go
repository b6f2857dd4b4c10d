package router

import "github.com/StevenGabule/portfolio/metal/env"

const fixtureProjects = "projects"
const fixtureReviews = "reviews"
const fixtureServices = "services"

// Fixture resolves the JSON files the static sections are served from.
type Fixture struct {
	content env.ContentEnvironment
}

func NewFixture(content env.ContentEnvironment) Fixture {
	return Fixture{content: content}
}

func (f Fixture) GetProjects() string {
	return f.content.FixturePath(fixtureProjects)
}

func (f Fixture) GetReviews() string {
	return f.content.FixturePath(fixtureReviews)
}

func (f Fixture) GetServices() string {
	return f.content.FixturePath(fixtureServices)
}
