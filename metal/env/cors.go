package env

import "strings"

type CorsEnvironment struct {
	AllowedOrigins []string `validate:"required,min=1,dive,required"`
}

func ParseOrigins(raw string) []string {
	var origins []string

	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
