package model

type StudentStatus string

const (
	StatusActive   StudentStatus = "active"
	StatusInactive StudentStatus = "inactive"
)

func (s StudentStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type Student struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	BirthDate Date          `json:"birth_date"`
	Email     *string       `json:"email"`
	Status    StudentStatus `json:"status"`
	ClassID   *int64        `json:"class_id"`
}

type CreateStudentRequest struct {
	Name      string  `json:"name"       validate:"required,max=80"`
	BirthDate string  `json:"birth_date" validate:"required"` // format: YYYY-MM-DD
	Email     *string `json:"email"      validate:"omitempty,email"`
	Status    string  `json:"status"     validate:"omitempty,oneof=active inactive"`
	ClassID   *int64  `json:"class_id"`
}

type UpdateStudentRequest struct {
	Name      string  `json:"name"       validate:"required,max=80"`
	BirthDate string  `json:"birth_date" validate:"required"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Status    string  `json:"status"     validate:"omitempty,oneof=active inactive"`
	ClassID   *int64  `json:"class_id"`
}

// AgeRange mirrors the roster filter buckets offered by the console UI.
type AgeRange string

const (
	AgeRange5to7   AgeRange = "5-7"
	AgeRange8to10  AgeRange = "8-10"
	AgeRange11to13 AgeRange = "11-13"
	AgeRange14Plus AgeRange = "14+"
)

func (a AgeRange) Contains(age int) bool {
	switch a {
	case AgeRange5to7:
		return age >= 5 && age <= 7
	case AgeRange8to10:
		return age >= 8 && age <= 10
	case AgeRange11to13:
		return age >= 11 && age <= 13
	case AgeRange14Plus:
		return age >= 14
	}
	return true
}

type StudentFilter struct {
	Search   string
	ClassID  *int64
	Status   StudentStatus
	AgeRange AgeRange
	Sort     string // name | age
}
