package api

type GenerateRequest struct {
	Text string `json:"text"`

	Voice string `json:"voice"`

	Character string `json:"talkingAvatarCharacter"`
	Style     string `json:"talkingAvatarStyle"`

	// optional background image URL
	Background string `json:"background"`
}

type GenerateResponse struct {
	Success bool `json:"success"`

	VideoURL string `json:"video_url"`
	JobID    string `json:"job_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ModelsResponse struct {
	Avatars map[string][]string `json:"avatars"`
}

type VoicesResponse struct {
	Voices map[string][]string `json:"voices"`
}
