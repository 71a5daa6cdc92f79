package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tiagorb/enrollment-console/internal/model"
	"github.com/tiagorb/enrollment-console/internal/record"
	"github.com/tiagorb/enrollment-console/internal/roster"
	"github.com/tiagorb/enrollment-console/internal/utils"
)

// MinEnrollmentAge is the minimum admission age in completed years.
const MinEnrollmentAge = 5

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrClassFull       = errors.New("class is at full capacity")
	ErrIneligibleAge   = errors.New("minimum age not met")
)

// ValidationError carries field-keyed messages for a rejected request.
type ValidationError struct {
	Fields utils.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// RecordClient is the engine's view of the remote record service. Every
// mutation is confirmed there before the local mirror changes.
type RecordClient interface {
	ListClasses(ctx context.Context) ([]model.Class, error)
	ListStudents(ctx context.Context, params record.ListStudentsParams) ([]model.Student, error)
	CreateStudent(ctx context.Context, payload record.StudentPayload) (*model.Student, error)
	UpdateStudent(ctx context.Context, id int64, payload record.StudentPayload) (*model.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	RecordTransfer(ctx context.Context, studentID, classID int64) error
}

// TransferLog keeps the per-day transfer tally.
type TransferLog interface {
	IncrementTransfers(day time.Time) (int64, error)
	TransfersOn(day time.Time) (int64, error)
}

type EnrollmentService interface {
	Refresh(ctx context.Context) error
	Students(filter model.StudentFilter) []model.Student
	StudentByID(id int64) (model.Student, error)
	Classes() []model.Class
	Stats() model.Stats
	Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error)
	Update(ctx context.Context, id int64, req model.UpdateStudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id int64) error
	Transfer(ctx context.Context, req model.TransferRequest) (*model.Student, error)
}

type enrollmentService struct {
	store     *roster.Store
	recordSvc RecordClient
	transfers TransferLog
	now       func() time.Time
}

func NewEnrollmentService(store *roster.Store, recordSvc RecordClient, transfers TransferLog) EnrollmentService {
	return &enrollmentService{
		store:     store,
		recordSvc: recordSvc,
		transfers: transfers,
		now:       time.Now,
	}
}

// Refresh pulls classes and students from the record service and replaces
// the mirror atomically. Recommended after a NotFound, which usually means
// another session changed the roster.
func (s *enrollmentService) Refresh(ctx context.Context) error {
	classes, err := s.recordSvc.ListClasses(ctx)
	if err != nil {
		return err
	}
	students, err := s.recordSvc.ListStudents(ctx, record.ListStudentsParams{})
	if err != nil {
		return err
	}
	s.store.Replace(students, classes)
	return nil
}

func (s *enrollmentService) Students(filter model.StudentFilter) []model.Student {
	return s.store.Students(filter)
}

func (s *enrollmentService) StudentByID(id int64) (model.Student, error) {
	st, ok := s.store.Student(id)
	if !ok {
		return model.Student{}, ErrStudentNotFound
	}
	return st, nil
}

func (s *enrollmentService) Classes() []model.Class {
	return s.store.Classes()
}

func (s *enrollmentService) Stats() model.Stats {
	total, active := s.store.CountStudents()
	today, err := s.transfers.TransfersOn(s.now())
	if err != nil {
		log.Printf("transfer tally read failed: %v", err)
	}
	return model.Stats{
		TotalStudents:  total,
		ActiveStudents: active,
		TotalClasses:   s.store.CountClasses(),
		TransfersToday: today,
	}
}

func (s *enrollmentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	req.Name = utils.SanitizeString(req.Name)
	payload, err := s.buildPayload(req.Name, req.BirthDate, req.Email, req.Status, req.ClassID, &req)
	if err != nil {
		return nil, err
	}

	// Capacity is checked strictly before any write; a full class rejects
	// the whole create with nothing allocated.
	if payload.ClassID != nil {
		if err := s.canEnroll(*payload.ClassID); err != nil {
			return nil, err
		}
	}

	created, err := s.recordSvc.CreateStudent(ctx, *payload)
	if err != nil {
		return nil, mapRemoteErr(err)
	}
	s.store.PutStudent(*created)
	return created, nil
}

func (s *enrollmentService) Update(ctx context.Context, id int64, req model.UpdateStudentRequest) (*model.Student, error) {
	current, ok := s.store.Student(id)
	if !ok {
		return nil, ErrStudentNotFound
	}

	req.Name = utils.SanitizeString(req.Name)
	payload, err := s.buildPayload(req.Name, req.BirthDate, req.Email, req.Status, req.ClassID, &req)
	if err != nil {
		return nil, err
	}

	// A class change is guarded on the new class only; leaving the old one
	// always frees capacity. A plain edit keeping the same class needs no
	// guard, the student already holds that slot.
	if payload.ClassID != nil && !sameClass(current.ClassID, payload.ClassID) {
		if err := s.canEnroll(*payload.ClassID); err != nil {
			return nil, err
		}
	}

	updated, err := s.recordSvc.UpdateStudent(ctx, id, *payload)
	if err != nil {
		return nil, mapRemoteErr(err)
	}
	s.store.PutStudent(*updated)
	return updated, nil
}

func (s *enrollmentService) Delete(ctx context.Context, id int64) error {
	if _, ok := s.store.Student(id); !ok {
		return ErrStudentNotFound
	}
	if err := s.recordSvc.DeleteStudent(ctx, id); err != nil {
		return mapRemoteErr(err)
	}
	s.store.DeleteStudent(id)
	return nil
}

// Transfer moves an enrolled student into another class. A successful
// transfer always marks the student active and bumps today's tally.
func (s *enrollmentService) Transfer(ctx context.Context, req model.TransferRequest) (*model.Student, error) {
	if errs := utils.ValidateStruct(req); errs.HasErrors() {
		return nil, &ValidationError{Fields: errs}
	}

	student, ok := s.store.Student(req.StudentID)
	if !ok {
		return nil, ErrStudentNotFound
	}
	target, ok := s.store.Class(req.ClassID)
	if !ok {
		return nil, ErrClassNotFound
	}
	if student.ClassID != nil && *student.ClassID == target.ID {
		return nil, &ValidationError{Fields: utils.ValidationErrors{
			"class_id": "student is already in this class",
		}}
	}
	if err := s.canEnroll(target.ID); err != nil {
		return nil, err
	}

	if err := s.recordSvc.RecordTransfer(ctx, student.ID, target.ID); err != nil {
		return nil, mapRemoteErr(err)
	}

	classID := target.ID
	student.ClassID = &classID
	student.Status = model.StatusActive
	s.store.PutStudent(student)

	if _, err := s.transfers.IncrementTransfers(s.now()); err != nil {
		log.Printf("transfer tally write failed: %v", err)
	}
	transfersTotal.Inc()

	if req.Reason != "" {
		log.Printf("transfer reason for student %d -> class %d: %s", student.ID, target.ID, req.Reason)
	}
	return &student, nil
}

// canEnroll is the capacity guard: a class at exactly capacity is full, one
// below accepts exactly one more. Occupancy is recounted from membership on
// every check.
func (s *enrollmentService) canEnroll(classID int64) error {
	class, ok := s.store.Class(classID)
	if !ok {
		return ErrClassNotFound
	}
	if s.store.Occupancy()[classID] >= class.Capacity {
		return ErrClassFull
	}
	return nil
}

// buildPayload validates the shared create/update fields and assembles the
// record-service payload. Nothing is sent or stored when it errors.
func (s *enrollmentService) buildPayload(name, birthDate string, email *string, status string, classID *int64, req interface{}) (*record.StudentPayload, error) {
	if errs := utils.ValidateStruct(req); errs.HasErrors() {
		return nil, &ValidationError{Fields: errs}
	}

	birth, err := model.ParseDate(birthDate)
	if err != nil {
		return nil, &ValidationError{Fields: utils.ValidationErrors{"birth_date": err.Error()}}
	}
	if utils.Age(birth.Time, s.now()) < MinEnrollmentAge {
		return nil, ErrIneligibleAge
	}

	st := model.StudentStatus(status)
	if st == "" {
		st = model.StatusInactive
	}

	return &record.StudentPayload{
		Name:      name,
		BirthDate: birth,
		Email:     email,
		Status:    st,
		ClassID:   classID,
	}, nil
}

func sameClass(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

func mapRemoteErr(err error) error {
	var remote *record.RemoteError
	if errors.As(err, &remote) && remote.IsNotFound() {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, remote.Detail)
	}
	return err
}
