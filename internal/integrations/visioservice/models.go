package visioservice

// CreateMeetingRequest is the payload sent to the video-conference service.
type CreateMeetingRequest struct {
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Meeting is the created meeting returned by the video-conference service.
type Meeting struct {
	ID      string `json:"id"`
	JoinURL string `json:"join_url"`
}

// ErrorResponse is the error body returned by the video-conference service.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
