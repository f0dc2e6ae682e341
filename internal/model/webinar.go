package model

import "time"

// Webinar is a scheduled live session attached to a course. The schedule
// is stored as separate date and clock strings and interpreted in the
// platform's source time zone (Europe/Moscow).
type Webinar struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	CourseID      string    `json:"courseId" bson:"courseId"`
	Title         string    `json:"title" bson:"title"`
	ScheduledDate string    `json:"scheduledDate" bson:"scheduledDate"` // "2006-01-02"
	ScheduledTime string    `json:"scheduledTime" bson:"scheduledTime"` // "15:04"
	DurationMin   int       `json:"durationMin" bson:"durationMin"`
	StreamURL     string    `json:"streamUrl" bson:"streamUrl"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
