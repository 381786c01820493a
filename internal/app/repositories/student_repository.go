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

// Unique constraint names from the students table
const (
	studentIDConstraint    = "students_student_id_key"
	studentEmailConstraint = "students_email_key"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student and sets its surrogate ID and creation time.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, student.StudentID, student.Name, student.Email).
		Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentIDConstraint) {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, studentEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("student violates a unique constraint")
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by surrogate ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, student_id, name, email, created_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.StudentID,
		&student.Name,
		&student.Email,
		&student.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// ExistsByID checks whether a student with the given surrogate ID exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves a page of students ordered by surrogate ID, with the total count.
func (r *StudentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `
		SELECT id, student_id, name, email, created_at
		FROM students
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
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
			return nil, 0, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update updates a student's mutable fields (name and email).
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, student.Name, student.Email, student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by surrogate ID. Deletion is refused while
// enrollments still reference the student.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	var hasEnrollments bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1)`,
		id).Scan(&hasEnrollments)

	if err != nil {
		return fmt.Errorf("error checking student enrollments: %w", err)
	}

	if hasEnrollments {
		return apperrors.ErrStudentHasEnrollments
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		// The FK is ON DELETE RESTRICT, so a concurrent enrollment still blocks the delete.
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentHasEnrollments
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
