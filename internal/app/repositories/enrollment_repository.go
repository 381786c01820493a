package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campusreg/internal/app/models"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
	"github.com/deniz/campusreg/internal/pkg/dberrors"
)

// Unique constraint enforcing one enrollment per (student, course) pair.
// The database is the authority here; the application-level duplicate check
// in the service is only a fast path.
const enrollmentPairConstraint = "enrollments_student_id_course_id_key"

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment and sets its surrogate ID and enrollment time.
// Returns apperrors.ErrAlreadyEnrolled when the pair constraint rejects the insert,
// so a losing concurrent writer observes the same outcome as the fast-path check.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, enrolled_at
	`

	err := r.db.QueryRow(ctx, query, enrollment.StudentID, enrollment.CourseID).
		Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, enrollmentPairConstraint) {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("student or course referenced by the enrollment no longer exists")
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// ExistsByPair checks whether an enrollment exists for the (student, course) pair
func (r *EnrollmentRepository) ExistsByPair(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// DeleteByPair removes the enrollment for the (student, course) pair.
// Student and course rows are untouched.
func (r *EnrollmentRepository) DeleteByPair(ctx context.Context, studentID, courseID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)

	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// UpdateGradeByPair overwrites the grade of the enrollment for the pair.
// A missing enrollment is an error, never a silent no-op.
func (r *EnrollmentRepository) UpdateGradeByPair(ctx context.Context, studentID, courseID int64, grade string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE enrollments SET grade = $1 WHERE student_id = $2 AND course_id = $3`,
		grade, studentID, courseID)

	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// GetCoursesByStudentID retrieves the courses a student is enrolled in,
// ordered by enrollment time.
func (r *EnrollmentRepository) GetCoursesByStudentID(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.course_code, c.title, c.credits, c.created_at
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at, e.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses for student: %w", err)
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
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetStudentsByCourseID retrieves the students enrolled in a course,
// ordered by enrollment time.
func (r *EnrollmentRepository) GetStudentsByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_id, s.name, s.email, s.created_at
		FROM students s
		JOIN enrollments e ON e.student_id = s.id
		WHERE e.course_id = $1
		ORDER BY e.enrolled_at, e.id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing students for course: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.StudentID,
			&student.Name,
			&student.Email,
			&student.CreatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
