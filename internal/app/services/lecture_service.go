package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
)

// LectureService defines the interface for lecture, enrolment, exam and score
// operations
type LectureService interface {
	CreateLecture(ctx context.Context, req *dto.CreateLectureRequest) (*models.Lecture, error)
	ListLectures(ctx context.Context, academyID string) ([]*models.Lecture, error)
	UpdateLecture(ctx context.Context, id int64, req *dto.UpdateLectureRequest) (*models.Lecture, error)
	DeleteLecture(ctx context.Context, id int64) error

	AddStudent(ctx context.Context, lectureID int64, userID string) error
	RemoveStudent(ctx context.Context, lectureID int64, userID string) error
	ListStudents(ctx context.Context, lectureID int64) ([]*models.User, error)

	CreateExamType(ctx context.Context, lectureID int64, req *dto.CreateExamTypeRequest) (*models.ExamType, error)
	ListExamTypes(ctx context.Context, lectureID int64) ([]*models.ExamType, error)
	DeleteExamType(ctx context.Context, lectureID, examTypeID int64) error

	CreateExam(ctx context.Context, lectureID int64, req *dto.CreateExamRequest) (*models.Exam, error)
	ListExams(ctx context.Context, lectureID int64) ([]*models.Exam, error)
	DeleteExam(ctx context.Context, lectureID, examID int64) error

	CreateScores(ctx context.Context, lectureID, examID int64, req *dto.CreateScoresRequest) error
	UpdateScores(ctx context.Context, lectureID, examID int64, req *dto.CreateScoresRequest) error
	ListScores(ctx context.Context, lectureID, examID int64) ([]*models.Score, error)
}

// lectureServiceImpl implements LectureService
type lectureServiceImpl struct {
	lectureStore LectureStore
	examStore    ExamStore
	scoreStore   ScoreStore
	academyStore AcademyStore
	userStore    UserStore
	logger       zerolog.Logger
}

// NewLectureService creates a new LectureService
func NewLectureService(
	lectureStore LectureStore,
	examStore ExamStore,
	scoreStore ScoreStore,
	academyStore AcademyStore,
	userStore UserStore,
	logger zerolog.Logger,
) LectureService {
	return &lectureServiceImpl{
		lectureStore: lectureStore,
		examStore:    examStore,
		scoreStore:   scoreStore,
		academyStore: academyStore,
		userStore:    userStore,
		logger:       logger,
	}
}

// CreateLecture creates a lecture under an academy
func (s *lectureServiceImpl) CreateLecture(ctx context.Context, req *dto.CreateLectureRequest) (*models.Lecture, error) {
	if _, err := s.academyStore.GetByID(ctx, req.AcademyID); err != nil {
		return nil, err
	}

	lecture := &models.Lecture{
		AcademyID:   req.AcademyID,
		LectureName: req.LectureName,
		TeacherID:   req.TeacherID,
		Days:        req.Days,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := s.lectureStore.Create(ctx, lecture); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("lectureId", lecture.ID).
		Str("academyId", lecture.AcademyID).
		Msg("Lecture created")

	return lecture, nil
}

// ListLectures returns the lectures of an academy
func (s *lectureServiceImpl) ListLectures(ctx context.Context, academyID string) ([]*models.Lecture, error) {
	if _, err := s.academyStore.GetByID(ctx, academyID); err != nil {
		return nil, err
	}
	return s.lectureStore.ListByAcademy(ctx, academyID)
}

// UpdateLecture modifies a lecture
func (s *lectureServiceImpl) UpdateLecture(ctx context.Context, id int64, req *dto.UpdateLectureRequest) (*models.Lecture, error) {
	lecture, err := s.lectureStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lecture.LectureName = req.LectureName
	lecture.TeacherID = req.TeacherID
	lecture.Days = req.Days
	lecture.StartTime = req.StartTime
	lecture.EndTime = req.EndTime

	if err := s.lectureStore.Update(ctx, lecture); err != nil {
		return nil, err
	}

	return lecture, nil
}

// DeleteLecture removes a lecture
func (s *lectureServiceImpl) DeleteLecture(ctx context.Context, id int64) error {
	if _, err := s.lectureStore.GetByID(ctx, id); err != nil {
		return err
	}
	return s.lectureStore.Delete(ctx, id)
}

// AddStudent enrols a student into a lecture
func (s *lectureServiceImpl) AddStudent(ctx context.Context, lectureID int64, userID string) error {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return err
	}
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.lectureStore.AddStudent(ctx, lectureID, userID)
}

// RemoveStudent drops a student from a lecture
func (s *lectureServiceImpl) RemoveStudent(ctx context.Context, lectureID int64, userID string) error {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return err
	}
	return s.lectureStore.RemoveStudent(ctx, lectureID, userID)
}

// ListStudents returns the students enrolled in a lecture
func (s *lectureServiceImpl) ListStudents(ctx context.Context, lectureID int64) ([]*models.User, error) {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return nil, err
	}
	return s.lectureStore.ListStudents(ctx, lectureID)
}

// CreateExamType adds an exam category to a lecture
func (s *lectureServiceImpl) CreateExamType(ctx context.Context, lectureID int64, req *dto.CreateExamTypeRequest) (*models.ExamType, error) {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return nil, err
	}

	examType := &models.ExamType{
		LectureID:    lectureID,
		ExamTypeName: req.ExamTypeName,
	}
	if err := s.examStore.CreateExamType(ctx, examType); err != nil {
		return nil, err
	}
	return examType, nil
}

// ListExamTypes returns the exam categories of a lecture
func (s *lectureServiceImpl) ListExamTypes(ctx context.Context, lectureID int64) ([]*models.ExamType, error) {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return nil, err
	}
	return s.examStore.ListExamTypes(ctx, lectureID)
}

// DeleteExamType removes an exam category from a lecture
func (s *lectureServiceImpl) DeleteExamType(ctx context.Context, lectureID, examTypeID int64) error {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return err
	}
	return s.examStore.DeleteExamType(ctx, lectureID, examTypeID)
}

// CreateExam creates an exam under a lecture
func (s *lectureServiceImpl) CreateExam(ctx context.Context, lectureID int64, req *dto.CreateExamRequest) (*models.Exam, error) {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return nil, err
	}

	exam := &models.Exam{
		LectureID:  lectureID,
		ExamName:   req.ExamName,
		ExamDate:   req.ExamDate,
		ExamTypeID: req.ExamTypeID,
		TotalScore: req.TotalScore,
	}
	if err := s.examStore.CreateExam(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// ListExams returns the exams of a lecture
func (s *lectureServiceImpl) ListExams(ctx context.Context, lectureID int64) ([]*models.Exam, error) {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return nil, err
	}
	return s.examStore.ListExams(ctx, lectureID)
}

// DeleteExam removes an exam from a lecture
func (s *lectureServiceImpl) DeleteExam(ctx context.Context, lectureID, examID int64) error {
	if _, err := s.lectureStore.GetByID(ctx, lectureID); err != nil {
		return err
	}
	return s.examStore.DeleteExam(ctx, lectureID, examID)
}

// CreateScores records scores for an exam and refreshes the exam's aggregate
// statistics
func (s *lectureServiceImpl) CreateScores(ctx context.Context, lectureID, examID int64, req *dto.CreateScoresRequest) error {
	if _, err := s.examStore.GetExam(ctx, lectureID, examID); err != nil {
		return err
	}

	for _, entry := range req.Scores {
		score := &models.Score{
			ExamID: examID,
			UserID: entry.UserID,
			Score:  entry.Score,
		}
		if err := s.scoreStore.Create(ctx, score); err != nil {
			return err
		}
	}

	return s.examStore.UpdateExamStats(ctx, examID)
}

// UpdateScores overwrites previously recorded scores and refreshes the exam's
// aggregate statistics
func (s *lectureServiceImpl) UpdateScores(ctx context.Context, lectureID, examID int64, req *dto.CreateScoresRequest) error {
	if _, err := s.examStore.GetExam(ctx, lectureID, examID); err != nil {
		return err
	}

	for _, entry := range req.Scores {
		score := &models.Score{
			ExamID: examID,
			UserID: entry.UserID,
			Score:  entry.Score,
		}
		if err := s.scoreStore.Update(ctx, score); err != nil {
			return err
		}
	}

	return s.examStore.UpdateExamStats(ctx, examID)
}

// ListScores returns the recorded scores of an exam
func (s *lectureServiceImpl) ListScores(ctx context.Context, lectureID, examID int64) ([]*models.Score, error) {
	if _, err := s.examStore.GetExam(ctx, lectureID, examID); err != nil {
		return nil, err
	}
	return s.scoreStore.ListByExam(ctx, examID)
}
