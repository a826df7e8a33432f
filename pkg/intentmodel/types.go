package intentmodel

// PredictRequest is the request body for the inference server.
type PredictRequest struct {
	Text string `json:"text"`
}

// PredictResponse is the inference server's response: the winning label
// plus its softmax probability.
type PredictResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// ErrorResponse is the inference server's error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
