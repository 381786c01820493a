package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/campusreg/internal/app/models"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
)

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a valid student", func(t *testing.T) {
		f := newFixture()
		student := &models.Student{StudentID: "S1001", Name: "Ada Lovelace", Email: "ada@example.com"}

		err := f.students.CreateStudent(ctx, student)

		require.NoError(t, err)
		assert.NotZero(t, student.ID)
		assert.False(t, student.CreatedAt.IsZero())
	})

	t.Run("rejects a malformed student number", func(t *testing.T) {
		f := newFixture()
		student := &models.Student{StudentID: "s!", Name: "Ada Lovelace", Email: "ada@example.com"}

		err := f.students.CreateStudent(ctx, student)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		f := newFixture()
		student := &models.Student{StudentID: "S1001", Name: "Ada Lovelace", Email: "not-an-email"}

		err := f.students.CreateStudent(ctx, student)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects a duplicate student number", func(t *testing.T) {
		f := newFixture()
		f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")

		err := f.students.CreateStudent(ctx, &models.Student{
			StudentID: "S1001", Name: "Someone Else", Email: "else@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newFixture()
		f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")

		err := f.students.CreateStudent(ctx, &models.Student{
			StudentID: "S1002", Name: "Someone Else", Email: "ada@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestGetStudentByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored record", func(t *testing.T) {
		f := newFixture()
		created := f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")

		student, err := f.students.GetStudentByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, "S1001", student.StudentID)
		assert.Equal(t, "Ada Lovelace", student.Name)
	})

	t.Run("fails for an unknown ID", func(t *testing.T) {
		f := newFixture()

		_, err := f.students.GetStudentByID(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("rejects a non-positive ID", func(t *testing.T) {
		f := newFixture()

		_, err := f.students.GetStudentByID(ctx, 0)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestGetAllStudents(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")
	f.mustStudent("S1002", "Alan Turing", "alan@example.com")
	f.mustStudent("S1003", "Grace Hopper", "grace@example.com")

	students, total, err := f.students.GetAllStudents(ctx, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, students, 2)
	assert.Equal(t, "S1002", students[0].StudentID)
	assert.Equal(t, "S1003", students[1].StudentID)
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and email", func(t *testing.T) {
		f := newFixture()
		created := f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")

		err := f.students.UpdateStudent(ctx, &models.Student{
			ID: created.ID, Name: "Ada King", Email: "ada.king@example.com",
		})
		require.NoError(t, err)

		updated, err := f.students.GetStudentByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada King", updated.Name)
		assert.Equal(t, "ada.king@example.com", updated.Email)
	})

	t.Run("fails for an unknown ID", func(t *testing.T) {
		f := newFixture()

		err := f.students.UpdateStudent(ctx, &models.Student{
			ID: 999, Name: "Nobody", Email: "nobody@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("rejects an email already used by another student", func(t *testing.T) {
		f := newFixture()
		f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")
		other := f.mustStudent("S1002", "Alan Turing", "alan@example.com")

		err := f.students.UpdateStudent(ctx, &models.Student{
			ID: other.ID, Name: "Alan Turing", Email: "ada@example.com",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a student without enrollments", func(t *testing.T) {
		f := newFixture()
		created := f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")

		require.NoError(t, f.students.DeleteStudent(ctx, created.ID))

		_, err := f.students.GetStudentByID(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("refuses to delete a student with enrollments", func(t *testing.T) {
		f := newFixture()
		student := f.mustStudent("S1001", "Ada Lovelace", "ada@example.com")
		course := f.mustCourse("CS101", "Intro to Computer Science", 3)
		_, err := f.enrollments.Enroll(ctx, student.ID, course.ID)
		require.NoError(t, err)

		err = f.students.DeleteStudent(ctx, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentHasEnrollments)
	})

	t.Run("fails for an unknown ID", func(t *testing.T) {
		f := newFixture()

		err := f.students.DeleteStudent(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}
