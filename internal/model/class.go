package model

// Class is managed by the record service; only Occupied changes locally,
// and only as a derived value. It is never stored or incremented directly.
type Class struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Occupied int    `json:"occupied"`
}

type TransferRequest struct {
	StudentID int64  `json:"student_id" validate:"required"`
	ClassID   int64  `json:"class_id"   validate:"required"`
	Reason    string `json:"reason"     validate:"omitempty,max=200"`
}

type Stats struct {
	TotalStudents  int   `json:"total_students"`
	ActiveStudents int   `json:"active_students"`
	TotalClasses   int   `json:"total_classes"`
	TransfersToday int64 `json:"transfers_today"`
}
