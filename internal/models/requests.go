package models

// Request bodies shared by the bid service handlers and the gateway client.
// The binding tags are go-playground/validator rules; gin applies them on the
// way in and the gateway applies them before anything is sent.

type BidInput struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	DeliveryTime int     `json:"deliveryTime" binding:"required,gt=0"`
	Proposal     string  `json:"proposal" binding:"required,min=50,max=1000"`
}

type StatusUpdateInput struct {
	Status BidStatus `json:"status" binding:"required,oneof=accepted rejected"`
}

type CounterOfferInput struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Message string  `json:"message" binding:"required,max=500"`
}

type ProjectInput struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
}
