package portal

import (
	"encoding/json"
	"fmt"
	"os"
)

func ParseJsonFile[T any](filePath string) (T, error) {
	var result T

	content, err := os.ReadFile(filePath)
	if err != nil {
		return result, fmt.Errorf("could not read file %s: %w", filePath, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("could not unmarshal json from %s: %w", filePath, err)
	}

	return result, nil
}
