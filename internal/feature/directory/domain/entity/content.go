// Package entity defines the reference content listed by the directory.
package entity

import "time"

// Career tracks.
const (
	TrackHospitality = "hospitality"
	TrackBTech       = "btech"
)

// ValidTrack reports whether t names a known track.
func ValidTrack(t string) bool {
	return t == TrackHospitality || t == TrackBTech
}

// College is an institution offering a hospitality or BTech program.
type College struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:200;not null"`
	Location string  `gorm:"size:200"`
	Fees     int     // yearly fees in rupees
	Course   string  `gorm:"size:200"`
	Rating   float64 `gorm:"index"`
	Track    string  `gorm:"size:32;index"`
}

// Course is a learning resource with an optional video.
type Course struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	VideoLink   string `gorm:"size:500"`
	Track       string `gorm:"size:32;index"`
}

// Job is an opening listed for one track.
type Job struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:200;not null"`
	Company  string `gorm:"size:200"`
	Location string `gorm:"size:200"`
	Salary   string `gorm:"size:100"`
	Track    string `gorm:"size:32;index"`
}

// Mentor is a person students can be matched with.
type Mentor struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:200;not null"`
	Experience string `gorm:"size:500"`
	Speciality string `gorm:"size:200"`
}

// PrevPaper links to a past exam paper, either external or uploaded.
type PrevPaper struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:300;not null"`
	Year      string `gorm:"size:32;index"`
	Link      string `gorm:"size:500"`
	CreatedAt time.Time
}

// MockInterview is a practice resource for interviews.
type MockInterview struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:300;not null"`
	Description string `gorm:"type:text"`
	Link        string `gorm:"size:500"`
	Track       string `gorm:"size:32;index"`
	CreatedAt   time.Time
}
