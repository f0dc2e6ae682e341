package model

import "time"

// NotificationAudience selects who a notification is shown to
type NotificationAudience string

const (
	AudienceAll    NotificationAudience = "all"
	AudienceCourse NotificationAudience = "course" // Everyone enrolled in CourseID
	AudienceUsers  NotificationAudience = "users"  // The explicit UserIDs list
)

// Notification is an admin-authored announcement with simple targeting
type Notification struct {
	ID          string               `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Body        string               `json:"body" bson:"body"`
	Audience    NotificationAudience `json:"audience" bson:"audience"`
	CourseID    string               `json:"courseId,omitempty" bson:"courseId,omitempty"`
	UserIDs     []string             `json:"userIds,omitempty" bson:"userIds,omitempty"`
	PublishedAt time.Time            `json:"publishedAt" bson:"publishedAt"`
}

// TargetsUser reports whether the notification should be shown to a user
// viewing with the given user and course context
func (n *Notification) TargetsUser(userID, courseID string) bool {
	switch n.Audience {
	case AudienceAll:
		return true
	case AudienceCourse:
		return n.CourseID != "" && n.CourseID == courseID
	case AudienceUsers:
		for _, id := range n.UserIDs {
			if id == userID {
				return true
			}
		}
	}
	return false
}
