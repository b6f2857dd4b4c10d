package payload

type KeepAliveResponse struct {
	Message  string `json:"message"`
	DateTime string `json:"date_time"`
}
