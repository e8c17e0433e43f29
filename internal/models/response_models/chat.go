package response_models

type ChatResponse struct {
	Response string `json:"response"`
}
