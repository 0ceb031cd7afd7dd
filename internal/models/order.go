package models

// Order is a school uniform order as stored upstream.
type Order struct {
	ID          string      `json:"id" bson:"_id"`
	SchoolID    string      `json:"school_id" bson:"schoolId" validate:"required"`
	CreatedAt   Timestamp   `json:"created_at" bson:"createdAt"`
	TotalAmount float64     `json:"total_amount" bson:"totalAmount" validate:"gte=0"`
	Items       []OrderItem `json:"items" bson:"items" validate:"dive"`
}

// OrderItem is one line of an order. A nil Quantity counts as a single unit.
type OrderItem struct {
	Name     string `json:"name" bson:"name"`
	Size     string `json:"size" bson:"size"`
	Quantity *int   `json:"quantity,omitempty" bson:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// Units returns the number of units the line counts for.
func (i OrderItem) Units() int {
	if i.Quantity == nil {
		return 1
	}
	if *i.Quantity < 0 {
		return 0
	}
	return *i.Quantity
}
