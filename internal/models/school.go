package models

type School struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name" validate:"required"`
}
