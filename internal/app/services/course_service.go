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

// Common course errors
var (
	ErrCourseValidation = fmt.Errorf("course %w", apperrors.ErrValidationFailed)
)

// CourseService handles course-related operations
type CourseService struct {
	courseStore CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore) *CourseService {
	return &CourseService{
		courseStore: courseStore,
	}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course, requireCode bool) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", ErrCourseValidation)
	}

	if requireCode && !validation.CompiledPatterns.CourseCode.MatchString(course.CourseCode) {
		return fmt.Errorf("%w: course code must be uppercase letters followed by digits", ErrCourseValidation)
	}

	if strings.TrimSpace(course.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrCourseValidation)
	}

	if course.Credits <= 0 {
		return fmt.Errorf("%w: credits must be positive", ErrCourseValidation)
	}

	return nil
}

// CreateCourse creates a new course record
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course, true); err != nil {
		return err
	}

	err := s.courseStore.Create(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves a course by surrogate ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", ErrCourseValidation)
	}

	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound,
				fmt.Sprintf("course %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves a page of courses and the total count
func (s *CourseService) GetAllCourses(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	courses, total, err := s.courseStore.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, total, nil
}

// UpdateCourse updates an existing course's title and credits
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course == nil || course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", ErrCourseValidation)
	}
	if err := s.validateCourse(course, false); err != nil {
		return err
	}

	err := s.courseStore.Update(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// DeleteCourse deletes a course by surrogate ID. Courses with active
// enrollments cannot be deleted.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", ErrCourseValidation)
	}

	err := s.courseStore.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound, apperrors.ErrCourseHasEnrollments) {
			return err
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
