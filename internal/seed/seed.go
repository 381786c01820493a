package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/deniz/campusreg/internal/app/models"
	appRepos "github.com/deniz/campusreg/internal/app/repositories"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
)

// CreateDefaultData creates a handful of default students and courses if they
// don't exist. Errors are collected but never abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Students/Courses)...")
	var finalErr error

	students := []*appModels.Student{
		{StudentID: "S1001", Name: "Ada Lovelace", Email: "ada.lovelace@example.edu"},
		{StudentID: "S1002", Name: "Alan Turing", Email: "alan.turing@example.edu"},
	}
	for _, student := range students {
		err := studentRepo.Create(ctx, student)
		if err != nil && !apperrors.Is(err, apperrors.ErrStudentIDAlreadyExists, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("studentId", student.StudentID).Msg("Error creating default student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []*appModels.Course{
		{CourseCode: "CS101", Title: "Introduction to Computer Science", Credits: 6},
		{CourseCode: "MATH201", Title: "Linear Algebra", Credits: 5},
	}
	for _, course := range courses {
		err := courseRepo.Create(ctx, course)
		if err != nil && !errors.Is(err, apperrors.ErrCourseCodeAlreadyExists) {
			lgr.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
