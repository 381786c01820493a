package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deniz/campusreg/internal/app/models"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
	"github.com/deniz/campusreg/internal/pkg/validation"
)

// Common student errors
var (
	ErrStudentValidation = fmt.Errorf("student %w", apperrors.ErrValidationFailed)
)

// StudentService handles student-related operations
type StudentService struct {
	studentStore StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore) *StudentService {
	return &StudentService{
		studentStore: studentStore,
	}
}

// validateStudent validates student data before database operations
func (s *StudentService) validateStudent(student *models.Student, requireStudentID bool) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", ErrStudentValidation)
	}

	if requireStudentID && !validation.CompiledPatterns.StudentID.MatchString(student.StudentID) {
		return fmt.Errorf("%w: student ID must be 4-16 alphanumeric characters", ErrStudentValidation)
	}

	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrStudentValidation)
	}

	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(student.Email)) {
		return fmt.Errorf("%w: email format is invalid", ErrStudentValidation)
	}

	return nil
}

// CreateStudent creates a new student record
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student, true); err != nil {
		return err
	}

	err := s.studentStore.Create(ctx, student)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentIDAlreadyExists, apperrors.ErrEmailAlreadyExists) {
			return err
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student by surrogate ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", ErrStudentValidation)
	}

	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAllStudents retrieves a page of students and the total count
func (s *StudentService) GetAllStudents(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	students, total, err := s.studentStore.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, total, nil
}

// UpdateStudent updates an existing student's name and email
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if student == nil || student.ID <= 0 {
		return fmt.Errorf("%w: invalid student ID", ErrStudentValidation)
	}
	if err := s.validateStudent(student, false); err != nil {
		return err
	}

	err := s.studentStore.Update(ctx, student)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrEmailAlreadyExists) {
			return err
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent deletes a student by surrogate ID. Students with active
// enrollments cannot be deleted.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", ErrStudentValidation)
	}

	err := s.studentStore.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrStudentHasEnrollments) {
			return err
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
