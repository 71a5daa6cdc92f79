package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tiagorb/enrollment-console/internal/model"
	"github.com/tiagorb/enrollment-console/internal/response"
	"github.com/tiagorb/enrollment-console/internal/service"
	"github.com/tiagorb/enrollment-console/internal/utils"
)

type StudentHandler struct {
	svc service.EnrollmentService
}

func NewStudentHandler(svc service.EnrollmentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// GetAll lists the mirrored roster with optional filters
// @Summary      List students
// @Description  Get the roster snapshot, filtered and sorted
// @Tags         students
// @Produce      json
// @Param        search    query  string  false  "Search by name"
// @Param        class_id  query  int     false  "Filter by class"
// @Param        status    query  string  false  "Filter by status (active|inactive)"
// @Param        age_range query  string  false  "Filter by age bucket (5-7|8-10|11-13|14+)"
// @Param        sort      query  string  false  "Sort order (name|age)"
// @Success      200  {object}  response.Response
// @Router       /students [get]
func (h *StudentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.StudentFilter{
		Search:   q.Get("search"),
		Status:   model.StudentStatus(q.Get("status")),
		AgeRange: model.AgeRange(q.Get("age_range")),
		Sort:     q.Get("sort"),
	}
	if c := q.Get("class_id"); c != "" {
		classID, err := strconv.ParseInt(c, 10, 64)
		if err == nil {
			filter.ClassID = &classID
		}
	}

	response.Success(w, "Students retrieved", h.svc.Students(filter))
}

// GetByID returns a single student
// @Summary      Get student by ID
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/{id} [get]
func (h *StudentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	student, err := h.svc.StudentByID(id)
	if err != nil {
		writeServiceError(w, err, "Failed to retrieve student")
		return
	}

	response.Success(w, "Student retrieved", student)
}

// Create registers a new student
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateStudentRequest  true  "Student creation request"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /students [post]
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStudentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	student, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to create student")
		return
	}

	response.Created(w, "Student created", student)
}

// Update edits an existing student
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Student ID"
// @Param        request  body      model.UpdateStudentRequest  true  "Student update request"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	student, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "Failed to update student")
		return
	}

	response.Success(w, "Student updated", student)
}

// Delete removes a student from the roster
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete student")
		return
	}

	response.Success(w, "Student deleted", nil)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid student ID", nil)
		return 0, false
	}
	return id, true
}
