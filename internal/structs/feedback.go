package structs

import "time"

type Feedback struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	ShopID    string    `json:"shopId,omitempty"`
	Rating    int64     `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateFeedback struct {
	ShopID  string `json:"shopId"`
	Rating  int64  `json:"rating"`
	Message string `json:"message"`
}

type GetListFeedbackRequest struct {
	ShopID string `json:"shopId"`
	Limit  int64  `json:"limit"`
	Offset int64  `json:"offset"`
}

type GetListFeedbackResponse struct {
	Count     int64      `json:"count"`
	Feedbacks []Feedback `json:"feedbacks"`
}
