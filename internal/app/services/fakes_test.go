package services

import (
	"context"
	"sort"
	"time"

	"github.com/deniz/campusreg/internal/app/models"
	"github.com/deniz/campusreg/internal/pkg/apperrors"
)

// In-memory store fakes mirroring the repository semantics, including the
// constraint outcomes the real Postgres-backed stores surface.

type fakeStudentStore struct {
	students    map[int64]*models.Student
	nextID      int64
	enrollments *fakeEnrollmentStore
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.StudentID == student.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	student.ID = f.nextID
	student.CreatedAt = time.Now()
	stored := *student
	f.students[student.ID] = &stored
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.students[id]
	return ok, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	ids := make([]int64, 0, len(f.students))
	for id := range f.students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var page []*models.Student
	for i, id := range ids {
		if uint64(i) < offset {
			continue
		}
		if len(page) >= limit {
			break
		}
		copied := *f.students[id]
		page = append(page, &copied)
	}
	return page, int64(len(f.students)), nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	existing, ok := f.students[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for id, other := range f.students {
		if id != student.ID && other.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	existing.Name = student.Name
	existing.Email = student.Email
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if f.enrollments != nil && f.enrollments.hasForStudent(id) {
		return apperrors.ErrStudentHasEnrollments
	}
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeCourseStore struct {
	courses     map[int64]*models.Course
	nextID      int64
	enrollments *fakeEnrollmentStore
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, existing := range f.courses {
		if existing.CourseCode == course.CourseCode {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	f.nextID++
	course.ID = f.nextID
	course.CreatedAt = time.Now()
	stored := *course
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (f *fakeCourseStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.courses[id]
	return ok, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context, offset uint64, limit int) ([]*models.Course, int64, error) {
	ids := make([]int64, 0, len(f.courses))
	for id := range f.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var page []*models.Course
	for i, id := range ids {
		if uint64(i) < offset {
			continue
		}
		if len(page) >= limit {
			break
		}
		copied := *f.courses[id]
		page = append(page, &copied)
	}
	return page, int64(len(f.courses)), nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	existing, ok := f.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	existing.Title = course.Title
	existing.Credits = course.Credits
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if f.enrollments != nil && f.enrollments.hasForCourse(id) {
		return apperrors.ErrCourseHasEnrollments
	}
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

type fakeEnrollmentStore struct {
	rows     []*models.Enrollment
	nextID   int64
	students *fakeStudentStore
	courses  *fakeCourseStore

	// forceConflictOnCreate emulates losing the check-then-act race: the
	// duplicate fast path sees no row but the unique constraint rejects
	// the insert anyway.
	forceConflictOnCreate bool
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	if f.forceConflictOnCreate {
		return apperrors.ErrAlreadyEnrolled
	}
	for _, row := range f.rows {
		if row.StudentID == enrollment.StudentID && row.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	f.nextID++
	enrollment.ID = f.nextID
	enrollment.EnrolledAt = time.Now()
	stored := *enrollment
	f.rows = append(f.rows, &stored)
	return nil
}

func (f *fakeEnrollmentStore) ExistsByPair(_ context.Context, studentID, courseID int64) (bool, error) {
	for _, row := range f.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentStore) DeleteByPair(_ context.Context, studentID, courseID int64) error {
	for i, row := range f.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollmentStore) UpdateGradeByPair(_ context.Context, studentID, courseID int64, grade string) error {
	for _, row := range f.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			g := grade
			row.Grade = &g
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollmentStore) GetCoursesByStudentID(_ context.Context, studentID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, row := range f.rows {
		if row.StudentID != studentID {
			continue
		}
		if course, ok := f.courses.courses[row.CourseID]; ok {
			copied := *course
			courses = append(courses, &copied)
		}
	}
	return courses, nil
}

func (f *fakeEnrollmentStore) GetStudentsByCourseID(_ context.Context, courseID int64) ([]*models.Student, error) {
	var students []*models.Student
	for _, row := range f.rows {
		if row.CourseID != courseID {
			continue
		}
		if student, ok := f.students.students[row.StudentID]; ok {
			copied := *student
			students = append(students, &copied)
		}
	}
	return students, nil
}

func (f *fakeEnrollmentStore) hasForStudent(studentID int64) bool {
	for _, row := range f.rows {
		if row.StudentID == studentID {
			return true
		}
	}
	return false
}

func (f *fakeEnrollmentStore) hasForCourse(courseID int64) bool {
	for _, row := range f.rows {
		if row.CourseID == courseID {
			return true
		}
	}
	return false
}

// fixture wires the three fakes together and builds the services under test.
type fixture struct {
	studentStore    *fakeStudentStore
	courseStore     *fakeCourseStore
	enrollmentStore *fakeEnrollmentStore

	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
}

func newFixture() *fixture {
	studentStore := newFakeStudentStore()
	courseStore := newFakeCourseStore()
	enrollmentStore := &fakeEnrollmentStore{students: studentStore, courses: courseStore}
	studentStore.enrollments = enrollmentStore
	courseStore.enrollments = enrollmentStore

	return &fixture{
		studentStore:    studentStore,
		courseStore:     courseStore,
		enrollmentStore: enrollmentStore,
		students:        NewStudentService(studentStore),
		courses:         NewCourseService(courseStore),
		enrollments:     NewEnrollmentService(enrollmentStore, studentStore, courseStore),
	}
}

func (f *fixture) mustStudent(studentID, name, email string) *models.Student {
	student := &models.Student{StudentID: studentID, Name: name, Email: email}
	if err := f.studentStore.Create(context.Background(), student); err != nil {
		panic(err)
	}
	return student
}

func (f *fixture) mustCourse(code, title string, credits int) *models.Course {
	course := &models.Course{CourseCode: code, Title: title, Credits: credits}
	if err := f.courseStore.Create(context.Background(), course); err != nil {
		panic(err)
	}
	return course
}
