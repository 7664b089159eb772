package structs

type Response struct {
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	Payload     any    `json:"payload,omitempty"`
}
