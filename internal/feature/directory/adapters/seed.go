package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"careerinn/internal/feature/directory/domain/entity"
)

var seedColleges = []entity.College{
	{Name: "IHM Hyderabad", Location: "DD Colony, Hyderabad", Fees: 320000, Course: "BSc Hospitality", Rating: 4.6, Track: entity.TrackHospitality},
	{Name: "IIHM Hyderabad", Location: "Somajiguda", Fees: 350000, Course: "BA Hospitality", Rating: 4.5, Track: entity.TrackHospitality},
	{Name: "JNTU Hyderabad", Location: "Kukatpally", Fees: 90000, Course: "B.Tech CSE", Rating: 4.1, Track: entity.TrackBTech},
	{Name: "IIIT Hyderabad", Location: "Gachibowli", Fees: 300000, Course: "B.Tech CSE", Rating: 4.8, Track: entity.TrackBTech},
}

var seedCourses = []entity.Course{
	{Title: "Intro to Programming", Description: "Basics of programming and problem solving.", VideoLink: "https://example.com/vid1", Track: entity.TrackBTech},
	{Title: "Data Structures", Description: "Arrays, lists, trees and graphs.", VideoLink: "https://example.com/vid2", Track: entity.TrackBTech},
	{Title: "Front Office Basics", Description: "Guest handling and reservations.", VideoLink: "https://example.com/vid3", Track: entity.TrackHospitality},
	{Title: "F&B Service", Description: "Food and beverage service standards.", VideoLink: "https://example.com/vid4", Track: entity.TrackHospitality},
}

var seedJobs = []entity.Job{
	{Title: "Management Trainee - Front Office", Company: "Taj Group", Location: "Hyderabad", Salary: "₹4 LPA", Track: entity.TrackHospitality},
	{Title: "Commis Chef", Company: "Marriott", Location: "Bengaluru", Salary: "₹2.5 LPA", Track: entity.TrackHospitality},
	{Title: "Software Engineer - New Grad", Company: "Startup", Location: "Hyderabad", Salary: "₹6 LPA", Track: entity.TrackBTech},
}

var seedMentors = []entity.Mentor{
	{Name: "Anita Rao", Experience: "15 years in hotel operations", Speciality: "Hotel Ops"},
	{Name: "Dr. Priya", Experience: "Professor & placement mentor", Speciality: "BTech - Placements"},
}

var seedPapers = []entity.PrevPaper{
	{Title: "NCHM JEE - Past Papers (Aglasem)", Year: "all", Link: "https://admission.aglasem.com/nchmct-jee-question-paper/"},
	{Title: "IIIT Sample Papers", Year: "recent", Link: "https://www.iiit.ac.in/admissions/sample-papers"},
}

var seedMockInterviews = []entity.MockInterview{
	{Title: "Front office role-play", Description: "Check-in, complaints and upselling scenarios.", Link: "https://example.com/mock/front-office", Track: entity.TrackHospitality},
	{Title: "Campus placement technical round", Description: "Data structures and project walkthrough questions.", Link: "https://example.com/mock/tech-round", Track: entity.TrackBTech},
}

// Seed inserts reference content into each empty table. Tables that already have rows are left alone.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, &entity.College{}, seedColleges); err != nil {
			return err
		}
		if err := seedTable(tx, &entity.Course{}, seedCourses); err != nil {
			return err
		}
		if err := seedTable(tx, &entity.Job{}, seedJobs); err != nil {
			return err
		}
		if err := seedTable(tx, &entity.Mentor{}, seedMentors); err != nil {
			return err
		}
		if err := seedTable(tx, &entity.PrevPaper{}, seedPapers); err != nil {
			return err
		}
		return seedTable(tx, &entity.MockInterview{}, seedMockInterviews)
	})
}

func seedTable[T any](tx *gorm.DB, model *T, rows []T) error {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count %T: %w", model, err)
	}
	if count > 0 {
		return nil
	}
	// Copy so the package-level seed slices never receive generated IDs.
	batch := make([]T, len(rows))
	copy(batch, rows)
	if err := tx.Create(&batch).Error; err != nil {
		return fmt.Errorf("failed to seed %T: %w", model, err)
	}
	slog.Info("seeded table", "model", fmt.Sprintf("%T", *model), "rows", len(batch))
	return nil
}
