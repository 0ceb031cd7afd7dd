package models

// Batch is a production batch delivered to a school's stock.
type Batch struct {
	ID       string      `json:"id" bson:"_id"`
	SchoolID string      `json:"school_id" bson:"schoolId" validate:"required"`
	Items    []BatchItem `json:"items" bson:"items" validate:"dive"`
}

type BatchItem struct {
	Name  string      `json:"name" bson:"name"`
	Sizes []SizeStock `json:"sizes" bson:"sizes" validate:"dive"`
}

// SizeStock is the stock held for one size of a batch item.
type SizeStock struct {
	Size     string `json:"size" bson:"size"`
	Quantity int    `json:"quantity" bson:"quantity" validate:"gte=0"`
}
