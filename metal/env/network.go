package env

type NetEnvironment struct {
	HttpHost string `validate:"required,lowercase,min=7"`
	HttpPort string `validate:"required,numeric"`

	// TrustedProxies may report the client through X-Forwarded-For.
	TrustedProxies []string `validate:"omitempty,dive,cidr|ip"`
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}
