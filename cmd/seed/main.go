package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eduforms/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("eduforms")

	course := model.Course{
		ID:          primitive.NewObjectID().Hex(),
		Title:       "Practical Product Analytics",
		Slug:        "practical-product-analytics",
		Description: "An eight week cohort course on product metrics, experimentation, and reporting.",
		Price:       2490000, // Minor units
		Currency:    "RUB",
		Published:   true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := db.Collection("courses").InsertOne(ctx, course); err != nil {
		log.Fatalf("Failed to insert course: %v", err)
	}

	form := model.Form{
		ID:          primitive.NewObjectID().Hex(),
		Title:       "Course Enrollment",
		Description: "Tell us about yourself so we can prepare your enrollment.",
		HasLogo:     true,
		Language:    "en",
		Questions: []model.Question{
			{
				ID:         "q_name",
				Type:       model.QuestionTypeText,
				Label:      "Full name",
				IsRequired: true,
			},
			{
				ID:         "q_email",
				Type:       model.QuestionTypeEmail,
				Label:      "Email address",
				IsRequired: true,
			},
			{
				ID:         "q_buyer",
				Type:       model.QuestionTypeRadio,
				Label:      "Who is paying for the course?",
				Options:    []string{"Myself", "My company"},
				IsRequired: true,
				Rules: []model.Rule{
					{
						TargetQuestionIDs: []string{"q_company", "q_inn"},
						Conditions: []model.Condition{
							{QuestionID: "q_buyer", Value: "My company", Logic: model.LogicAnd},
						},
					},
				},
			},
			{
				ID:               "q_company",
				Type:             model.QuestionTypeText,
				Label:            "Company name",
				IsConditional:    true,
				IsUsedForInvoice: true,
			},
			{
				ID:               "q_inn",
				Type:             model.QuestionTypeText,
				Label:            "Company tax number",
				IsConditional:    true,
				IsUsedForInvoice: true,
			},
			{
				ID:      "q_topics",
				Type:    model.QuestionTypeMultiSelect,
				Label:   "Which topics interest you most?",
				Options: []string{"Metrics", "Experimentation", "Dashboards", "SQL"},
			},
			{
				ID:    "q_cv",
				Type:  model.QuestionTypeFile,
				Label: "Attach your CV (optional)",
			},
			{
				ID:         "q_terms",
				Type:       model.QuestionTypeAccept,
				Label:      "I accept the terms of service",
				IsRequired: true,
			},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := db.Collection("forms").InsertOne(ctx, form); err != nil {
		log.Fatalf("Failed to insert form: %v", err)
	}

	nextWeek := time.Now().AddDate(0, 0, 7)
	webinar := model.Webinar{
		ID:            primitive.NewObjectID().Hex(),
		CourseID:      course.ID,
		Title:         "Open Lesson: Metrics That Matter",
		ScheduledDate: nextWeek.Format("2006-01-02"),
		ScheduledTime: "19:00",
		DurationMin:   90,
		StreamURL:     "https://stream.example.com/metrics-open-lesson",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if _, err := db.Collection("webinars").InsertOne(ctx, webinar); err != nil {
		log.Fatalf("Failed to insert webinar: %v", err)
	}

	fmt.Printf("Seeded course '%s', form '%s', webinar '%s'\n", course.Title, form.Title, webinar.Title)
}
