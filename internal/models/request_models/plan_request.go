package request_models

type GeneratePlanRequest struct {
	Days      int      `json:"days"`
	Budget    string   `json:"budget"`
	Interests []string `json:"interests"`
}
