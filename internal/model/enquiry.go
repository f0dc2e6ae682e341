package model

import "time"

// EnquiryStatus tracks an enquiry through the admin workflow
type EnquiryStatus string

const (
	EnquiryStatusNew    EnquiryStatus = "new"
	EnquiryStatusSeen   EnquiryStatus = "seen"
	EnquiryStatusClosed EnquiryStatus = "closed"
)

// Enquiry is a contact request submitted from the public site
type Enquiry struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Phone     string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Message   string        `json:"message" bson:"message"`
	Status    EnquiryStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
