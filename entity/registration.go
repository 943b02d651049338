package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Field names of a registration record. Steps collect answers under
// these keys and the sinks emit them in RecordColumns order.
const (
	FieldRegion      = "region"
	FieldMode        = "mode"
	FieldFullName    = "full_name"
	FieldDateOfBirth = "date_of_birth"
	FieldDistrict    = "district"
	FieldPhone       = "phone"
	FieldAppealText  = "appeal_text"
)

// Registration is one completed reception application, assembled from a
// finished dialog and handed to the record sinks exactly once.
type Registration struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      int64     `json:"user_id" bson:"user_id"`
	Language    Language  `json:"language" bson:"language"`
	Region      string    `json:"region" bson:"region"`
	Mode        string    `json:"mode" bson:"mode"`
	FullName    string    `json:"full_name" bson:"full_name"`
	DateOfBirth string    `json:"date_of_birth" bson:"date_of_birth"`
	District    string    `json:"district" bson:"district"`
	Phone       string    `json:"phone" bson:"phone"`
	AppealText  string    `json:"appeal_text" bson:"appeal_text"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submitted_at"`
}

// NewRegistration pins a record from the answers of a finished dialog.
// The ID and submission timestamp are fixed here so retried deliveries
// stay byte-identical.
func NewRegistration(userID int64, lang Language, fields map[string]string) *Registration {
	return &Registration{
		ID:          uuid.NewString(),
		UserID:      userID,
		Language:    lang,
		Region:      fields[FieldRegion],
		Mode:        fields[FieldMode],
		FullName:    fields[FieldFullName],
		DateOfBirth: fields[FieldDateOfBirth],
		District:    fields[FieldDistrict],
		Phone:       fields[FieldPhone],
		AppealText:  fields[FieldAppealText],
		SubmittedAt: time.Now().UTC(),
	}
}

// RecordColumns is the column layout shared by every sink, CSV header
// included.
func RecordColumns() []string {
	return []string{
		FieldRegion,
		FieldMode,
		FieldFullName,
		FieldDateOfBirth,
		FieldDistrict,
		FieldPhone,
		FieldAppealText,
		"submission_timestamp",
		"user_id",
	}
}

// Row renders the record in RecordColumns order.
func (r *Registration) Row() []string {
	return []string{
		r.Region,
		r.Mode,
		r.FullName,
		r.DateOfBirth,
		r.District,
		r.Phone,
		r.AppealText,
		r.SubmittedAt.Format("2006-01-02 15:04:05"),
		strconv.FormatInt(r.UserID, 10),
	}
}
