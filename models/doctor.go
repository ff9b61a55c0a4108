package models

import "time"

// AvailabilityWindow is a doctor's declared bookable window for one weekday.
// StartTime and EndTime are "HH:MM" strings in the scheduler's location.
type AvailabilityWindow struct {
	Day         string `bson:"day" json:"day"` // "monday" .. "sunday"
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// Certification is a professional credential held by a doctor.
type Certification struct {
	Name        string     `bson:"name" json:"name"`
	IssuingBody string     `bson:"issuingBody" json:"issuingBody"`
	DateIssued  *time.Time `bson:"dateIssued,omitempty" json:"dateIssued,omitempty"`
	ExpiryDate  *time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	Status      string     `bson:"status" json:"status"` // "active", "expired", "pending"
}

// Doctor is a practitioner profile linked to a platform user account.
type Doctor struct {
	ID              string               `bson:"id" json:"id"`
	UserID          string               `bson:"userId" json:"userId"`
	FullName        string               `bson:"fullName" json:"fullName"`
	Email           string               `bson:"email" json:"email"`
	Specialization  string               `bson:"specialization" json:"specialization"`
	LicenseNumber   string               `bson:"licenseNumber" json:"licenseNumber"`
	PracticeAreas   []string             `bson:"practiceAreas,omitempty" json:"practiceAreas,omitempty"`
	Certifications  []Certification      `bson:"certifications,omitempty" json:"certifications,omitempty"`
	Availability    []AvailabilityWindow `bson:"availability,omitempty" json:"availability,omitempty"`
	ConsultationFee float64              `bson:"consultationFee" json:"consultationFee"`
	IsAvailable     bool                 `bson:"isAvailable" json:"isAvailable"`
	ProfileImageURL string               `bson:"profileImageUrl,omitempty" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// WindowFor returns the doctor's availability window for the given weekday,
// or nil when none is configured (the caller falls back to the default hours).
func (d *Doctor) WindowFor(weekday time.Weekday) *AvailabilityWindow {
	day := weekdayName(weekday)
	for i := range d.Availability {
		if d.Availability[i].Day == day {
			return &d.Availability[i]
		}
	}
	return nil
}

func weekdayName(w time.Weekday) string {
	switch w {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
