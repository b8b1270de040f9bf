package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
)

type lectureFixture struct {
	service      LectureService
	lectureStore *fakeLectureStore
	examStore    *fakeExamStore
	scoreStore   *fakeScoreStore
	userStore    *fakeUserStore
	academyStore *fakeAcademyStore
}

func newLectureFixture(t *testing.T) *lectureFixture {
	t.Helper()

	userStore := newFakeUserStore()
	lectureStore := newFakeLectureStore(userStore)
	examStore := newFakeExamStore()
	scoreStore := newFakeScoreStore()
	academyStore := newFakeAcademyStore()

	academyStore.academies["seoul_math"] = &models.Academy{
		AcademyID: "seoul_math",
		Status:    models.AcademyActive,
	}
	userStore.users["student_kim"] = &models.User{UserID: "student_kim", Role: models.RoleStudent}
	userStore.users["student_lee"] = &models.User{UserID: "student_lee", Role: models.RoleStudent}

	return &lectureFixture{
		service:      NewLectureService(lectureStore, examStore, scoreStore, academyStore, userStore, zerolog.Nop()),
		lectureStore: lectureStore,
		examStore:    examStore,
		scoreStore:   scoreStore,
		userStore:    userStore,
		academyStore: academyStore,
	}
}

func (f *lectureFixture) createLecture(t *testing.T) *models.Lecture {
	t.Helper()

	lecture, err := f.service.CreateLecture(context.Background(), &dto.CreateLectureRequest{
		AcademyID:   "seoul_math",
		LectureName: "Calculus I",
		TeacherID:   "teacher_lee",
		Days:        "MON,WED,FRI",
		StartTime:   "16:00",
		EndTime:     "18:00",
	})
	require.NoError(t, err)
	return lecture
}

func (f *lectureFixture) createExam(t *testing.T, lectureID int64) *models.Exam {
	t.Helper()

	examType, err := f.service.CreateExamType(context.Background(), lectureID, &dto.CreateExamTypeRequest{
		ExamTypeName: "MIDTERM",
	})
	require.NoError(t, err)

	exam, err := f.service.CreateExam(context.Background(), lectureID, &dto.CreateExamRequest{
		ExamName:   "Midterm Week 1",
		ExamDate:   time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
		ExamTypeID: examType.ID,
		TotalScore: 100,
	})
	require.NoError(t, err)
	return exam
}

func TestCreateLecture(t *testing.T) {
	f := newLectureFixture(t)

	lecture := f.createLecture(t)
	assert.NotZero(t, lecture.ID)
	assert.Equal(t, "seoul_math", lecture.AcademyID)

	lectures, err := f.service.ListLectures(context.Background(), "seoul_math")
	require.NoError(t, err)
	assert.Len(t, lectures, 1)
}

func TestCreateLectureUnknownAcademy(t *testing.T) {
	f := newLectureFixture(t)

	_, err := f.service.CreateLecture(context.Background(), &dto.CreateLectureRequest{
		AcademyID:   "nope",
		LectureName: "Calculus I",
		TeacherID:   "teacher_lee",
		Days:        "MON",
		StartTime:   "16:00",
		EndTime:     "18:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrAcademyNotFound)
}

func TestUpdateLecture(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)

	updated, err := f.service.UpdateLecture(context.Background(), lecture.ID, &dto.UpdateLectureRequest{
		LectureName: "Calculus II",
		TeacherID:   "teacher_choi",
		Days:        "TUE,THU",
		StartTime:   "17:00",
		EndTime:     "19:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Calculus II", updated.LectureName)
	assert.Equal(t, "teacher_choi", updated.TeacherID)

	_, err = f.service.UpdateLecture(context.Background(), 999, &dto.UpdateLectureRequest{
		LectureName: "Ghost",
		TeacherID:   "t",
		Days:        "MON",
		StartTime:   "10:00",
		EndTime:     "11:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrLectureNotFound)
}

func TestDeleteLecture(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)

	require.NoError(t, f.service.DeleteLecture(context.Background(), lecture.ID))
	assert.ErrorIs(t, f.service.DeleteLecture(context.Background(), lecture.ID), apperrors.ErrLectureNotFound)
}

func TestLectureEnrolment(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)

	require.NoError(t, f.service.AddStudent(context.Background(), lecture.ID, "student_kim"))

	err := f.service.AddStudent(context.Background(), lecture.ID, "student_kim")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	err = f.service.AddStudent(context.Background(), lecture.ID, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	students, err := f.service.ListStudents(context.Background(), lecture.ID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "student_kim", students[0].UserID)

	require.NoError(t, f.service.RemoveStudent(context.Background(), lecture.ID, "student_kim"))
	err = f.service.RemoveStudent(context.Background(), lecture.ID, "student_kim")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestExamTypes(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)

	examType, err := f.service.CreateExamType(context.Background(), lecture.ID, &dto.CreateExamTypeRequest{
		ExamTypeName: "MIDTERM",
	})
	require.NoError(t, err)
	assert.NotZero(t, examType.ID)

	_, err = f.service.CreateExamType(context.Background(), lecture.ID, &dto.CreateExamTypeRequest{
		ExamTypeName: "MIDTERM",
	})
	assert.ErrorIs(t, err, apperrors.ErrExamTypeExists)

	types, err := f.service.ListExamTypes(context.Background(), lecture.ID)
	require.NoError(t, err)
	assert.Len(t, types, 1)

	require.NoError(t, f.service.DeleteExamType(context.Background(), lecture.ID, examType.ID))
	assert.ErrorIs(t,
		f.service.DeleteExamType(context.Background(), lecture.ID, examType.ID),
		apperrors.ErrExamTypeNotFound)
}

func TestExamTypeUnknownLecture(t *testing.T) {
	f := newLectureFixture(t)

	_, err := f.service.CreateExamType(context.Background(), 999, &dto.CreateExamTypeRequest{
		ExamTypeName: "MIDTERM",
	})
	assert.ErrorIs(t, err, apperrors.ErrLectureNotFound)
}

func TestExams(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)
	exam := f.createExam(t, lecture.ID)

	exams, err := f.service.ListExams(context.Background(), lecture.ID)
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, exam.ID, exams[0].ID)

	require.NoError(t, f.service.DeleteExam(context.Background(), lecture.ID, exam.ID))
	assert.ErrorIs(t,
		f.service.DeleteExam(context.Background(), lecture.ID, exam.ID),
		apperrors.ErrExamNotFound)
}

func TestCreateScores(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)
	exam := f.createExam(t, lecture.ID)

	err := f.service.CreateScores(context.Background(), lecture.ID, exam.ID, &dto.CreateScoresRequest{
		Scores: []dto.ScoreEntry{
			{UserID: "student_kim", Score: 92},
			{UserID: "student_lee", Score: 78},
		},
	})
	require.NoError(t, err)

	scores, err := f.service.ListScores(context.Background(), lecture.ID, exam.ID)
	require.NoError(t, err)
	assert.Len(t, scores, 2)

	// Statistics are refreshed once per submission.
	assert.Equal(t, []int64{exam.ID}, f.examStore.statsRefresh)
}

func TestCreateScoresDuplicate(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)
	exam := f.createExam(t, lecture.ID)

	submission := &dto.CreateScoresRequest{
		Scores: []dto.ScoreEntry{{UserID: "student_kim", Score: 92}},
	}
	require.NoError(t, f.service.CreateScores(context.Background(), lecture.ID, exam.ID, submission))

	err := f.service.CreateScores(context.Background(), lecture.ID, exam.ID, submission)
	assert.ErrorIs(t, err, apperrors.ErrScoreAlreadyExists)
}

func TestUpdateScores(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)
	exam := f.createExam(t, lecture.ID)

	require.NoError(t, f.service.CreateScores(context.Background(), lecture.ID, exam.ID, &dto.CreateScoresRequest{
		Scores: []dto.ScoreEntry{{UserID: "student_kim", Score: 92}},
	}))

	require.NoError(t, f.service.UpdateScores(context.Background(), lecture.ID, exam.ID, &dto.CreateScoresRequest{
		Scores: []dto.ScoreEntry{{UserID: "student_kim", Score: 95}},
	}))

	scores, err := f.service.ListScores(context.Background(), lecture.ID, exam.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 95, scores[0].Score)

	err = f.service.UpdateScores(context.Background(), lecture.ID, exam.ID, &dto.CreateScoresRequest{
		Scores: []dto.ScoreEntry{{UserID: "ghost", Score: 10}},
	})
	assert.ErrorIs(t, err, apperrors.ErrScoreNotFound)
}

func TestScoresUnknownExam(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)

	err := f.service.CreateScores(context.Background(), lecture.ID, 999, &dto.CreateScoresRequest{
		Scores: []dto.ScoreEntry{{UserID: "student_kim", Score: 92}},
	})
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)

	_, err = f.service.ListScores(context.Background(), lecture.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
}

func TestStudentLecturesThroughEnrolment(t *testing.T) {
	f := newLectureFixture(t)
	lecture := f.createLecture(t)
	require.NoError(t, f.service.AddStudent(context.Background(), lecture.ID, "student_kim"))

	lectures, err := f.lectureStore.ListByStudent(context.Background(), "student_kim")
	require.NoError(t, err)
	require.Len(t, lectures, 1)
	assert.Equal(t, lecture.ID, lectures[0].ID)
}
