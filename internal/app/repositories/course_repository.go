package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campusreg/internal/app/models"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
	"github.com/deniz/campusreg/internal/pkg/dberrors"
)

// Unique constraint name from the courses table
const courseCodeConstraint = "courses_course_code_key"

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and sets its surrogate ID and creation time.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_code, title, credits)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, course.CourseCode, course.Title, course.Credits).
		Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseCodeConstraint) {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("course violates a unique constraint")
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by surrogate ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, course_code, title, credits, created_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.CourseCode,
		&course.Title,
		&course.Credits,
		&course.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// ExistsByID checks whether a course with the given surrogate ID exists
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves a page of courses ordered by surrogate ID, with the total count.
func (r *CourseRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	query := `
		SELECT id, course_code, title, credits, created_at
		FROM courses
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CourseCode,
			&course.Title,
			&course.Credits,
			&course.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Update updates a course's mutable fields (title and credits).
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, credits = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Title, course.Credits, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by surrogate ID. Deletion is refused while
// enrollments still reference the course.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	var hasEnrollments bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = $1)`,
		id).Scan(&hasEnrollments)

	if err != nil {
		return fmt.Errorf("error checking course enrollments: %w", err)
	}

	if hasEnrollments {
		return apperrors.ErrCourseHasEnrollments
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasEnrollments
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
