package payload

import "github.com/StevenGabule/portfolio/content"

type CategoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CategoriesResponse struct {
	Version string             `json:"version"`
	Data    []CategoryResponse `json:"data"`
}

func GetCategoriesResponse(categories []content.CategoryCount) []CategoryResponse {
	data := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		data = append(data, CategoryResponse{
			ID:    string(category.Category),
			Label: category.Label,
			Count: category.Count,
		})
	}

	return data
}
