package response

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// MessageResponse is the body of acknowledgements such as logout.
type MessageResponse struct {
	Message string `json:"message"`
}

type APIInfoResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
