package model

import (
	"time"

	"github.com/google/uuid"
)

type VisitType string

const (
	VisitTypeOutPatient VisitType = "OP"
	VisitTypeInPatient  VisitType = "IP"
	VisitTypeEmergency  VisitType = "EM"
)

type Patient struct {
	ID                uuid.UUID `json:"id"`
	ApplicationNumber string    `json:"application_number"`
	VisitType         VisitType `json:"visit_type"`
	Name              string    `json:"name"`
	Sex               string    `json:"sex"`
	DOB               string    `json:"dob"`
	Age               int       `json:"age"`
	BloodGroup        string    `json:"blood_group"`
	MaritalStatus     string    `json:"marital_status"`
	GuardianName      string    `json:"guardian_name"`
	GuardianPhone     string    `json:"guardian_phone"`
	Phone             string    `json:"phone"`
	Aadhaar           string    `json:"aadhaar"`
	UHID              string    `json:"uhid"`
	Address           string    `json:"address"`
	Complaints        string    `json:"complaints"`
	Remarks           string    `json:"remarks"`
	Doctor            string    `json:"doctor"`
	Visits            []Visit   `json:"visits"`
	CreatedAt         time.Time `json:"created_at"`
}

type Visit struct {
	ID         uuid.UUID `json:"id"`
	Date       time.Time `json:"date"`
	Complaints string    `json:"complaints"`
	Diagnosis  string    `json:"diagnosis"`
	Doctor     string    `json:"doctor"`
	Notes      string    `json:"notes"`
}

type RegisterPatientRequest struct {
	VisitType     string `json:"visit_type" binding:"required,oneof=OP IP EM"`
	Name          string `json:"name" binding:"required"`
	Sex           string `json:"sex" binding:"required,oneof=Female Male Other"`
	DOB           string `json:"dob" binding:"required,datetime=2006-01-02"`
	BloodGroup    string `json:"blood_group" binding:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	MaritalStatus string `json:"marital_status" binding:"omitempty,oneof=Married Unmarried"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	Phone         string `json:"phone" binding:"required"`
	Aadhaar       string `json:"aadhaar"`
	UHID          string `json:"uhid"`
	Address       string `json:"address"`
	Complaints    string `json:"complaints"`
	Remarks       string `json:"remarks"`
	Doctor        string `json:"doctor" binding:"required"`
}

type AddVisitRequest struct {
	Complaints string `json:"complaints" binding:"required"`
	Diagnosis  string `json:"diagnosis"`
	Doctor     string `json:"doctor" binding:"required"`
	Notes      string `json:"notes"`
}

// SearchCriteria is a conjunction of optional predicates; empty fields
// are skipped.
type SearchCriteria struct {
	Name       string `form:"name"`
	Phone      string `form:"phone"`
	DOB        string `form:"dob"`
	Aadhaar    string `form:"aadhaar"`
	UHID       string `form:"uhid"`
	BloodGroup string `form:"blood_group"`
}

func (c SearchCriteria) Empty() bool {
	return c == SearchCriteria{}
}
