package kernel

import (
	"fmt"

	"github.com/StevenGabule/portfolio/metal/env"
	"github.com/StevenGabule/portfolio/pkg/portal"
	"github.com/joho/godotenv"
)

func Ignite(envPath string, validate *portal.Validator) (*env.Environment, error) {
	if err := godotenv.Load(envPath); err != nil {
		return nil, fmt.Errorf("load environment from %s: %w", envPath, err)
	}

	return MakeEnv(validate), nil
}
