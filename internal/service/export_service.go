package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tiagorb/enrollment-console/internal/model"
	"github.com/tiagorb/enrollment-console/internal/roster"
)

type ExportService interface {
	ExportJSON(w io.Writer) error
	ExportXLSX(w io.Writer) error
}

type exportService struct {
	store *roster.Store
}

func NewExportService(store *roster.Store) ExportService {
	return &exportService{store: store}
}

type exportDocument struct {
	Students []model.Student `json:"students"`
	Classes  []model.Class   `json:"classes"`
}

func (s *exportService) ExportJSON(w io.Writer) error {
	doc := exportDocument{
		Students: s.store.Students(model.StudentFilter{}),
		Classes:  s.store.Classes(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (s *exportService) ExportXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const studentsSheet = "Students"
	const classesSheet = "Classes"

	f.SetSheetName("Sheet1", studentsSheet)
	if _, err := f.NewSheet(classesSheet); err != nil {
		return err
	}

	studentHeaders := []interface{}{"ID", "Name", "Birth Date", "Email", "Status", "Class"}
	if err := f.SetSheetRow(studentsSheet, "A1", &studentHeaders); err != nil {
		return err
	}

	classNames := make(map[int64]string)
	for _, c := range s.store.Classes() {
		classNames[c.ID] = c.Name
	}

	for i, st := range s.store.Students(model.StudentFilter{}) {
		email := ""
		if st.Email != nil {
			email = *st.Email
		}
		className := ""
		if st.ClassID != nil {
			className = classNames[*st.ClassID]
		}
		row := []interface{}{st.ID, st.Name, st.BirthDate.String(), email, string(st.Status), className}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(studentsSheet, cell, &row); err != nil {
			return err
		}
	}

	classHeaders := []interface{}{"ID", "Name", "Capacity", "Occupied"}
	if err := f.SetSheetRow(classesSheet, "A1", &classHeaders); err != nil {
		return err
	}
	for i, c := range s.store.Classes() {
		row := []interface{}{c.ID, c.Name, c.Capacity, c.Occupied}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(classesSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
