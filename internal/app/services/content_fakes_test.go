package services

import (
	"context"
	"errors"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/pkg/apperrors"
)

// fakeNoticeStore is an in-memory NoticeStore mirroring repository error
// semantics.
type fakeNoticeStore struct {
	notices    map[int64]*models.Notice
	nextID     int64
	viewsErr   error
	viewBumped int
}

func newFakeNoticeStore() *fakeNoticeStore {
	return &fakeNoticeStore{notices: make(map[int64]*models.Notice), nextID: 1}
}

func (f *fakeNoticeStore) Create(_ context.Context, notice *models.Notice) error {
	notice.ID = f.nextID
	f.nextID++
	stored := *notice
	f.notices[notice.ID] = &stored
	return nil
}

func (f *fakeNoticeStore) GetByID(_ context.Context, id int64) (*models.Notice, error) {
	notice, ok := f.notices[id]
	if !ok {
		return nil, apperrors.ErrNoticeNotFound
	}
	copied := *notice
	return &copied, nil
}

func (f *fakeNoticeStore) List(_ context.Context, academyID string, lectureID int64, offset uint64, limit int) ([]*models.Notice, error) {
	var matched []*models.Notice
	for _, notice := range f.notices {
		if notice.AcademyID == academyID && notice.LectureID == lectureID {
			matched = append(matched, notice)
		}
	}
	if uint64(len(matched)) <= offset {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeNoticeStore) Count(_ context.Context, academyID string, lectureID int64) (int64, error) {
	var total int64
	for _, notice := range f.notices {
		if notice.AcademyID == academyID && notice.LectureID == lectureID {
			total++
		}
	}
	return total, nil
}

func (f *fakeNoticeStore) IncrementViews(_ context.Context, id int64) error {
	if f.viewsErr != nil {
		return f.viewsErr
	}
	notice, ok := f.notices[id]
	if !ok {
		return apperrors.ErrNoticeNotFound
	}
	notice.Views++
	f.viewBumped++
	return nil
}

func (f *fakeNoticeStore) Update(_ context.Context, id int64, title, content string) (*models.Notice, error) {
	notice, ok := f.notices[id]
	if !ok {
		return nil, apperrors.ErrNoticeNotFound
	}
	notice.Title = title
	notice.Content = content
	copied := *notice
	return &copied, nil
}

func (f *fakeNoticeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.notices[id]; !ok {
		return apperrors.ErrNoticeNotFound
	}
	delete(f.notices, id)
	return nil
}

// fakeLectureStore is an in-memory LectureStore mirroring repository error
// semantics.
type fakeLectureStore struct {
	lectures  map[int64]*models.Lecture
	enrolment map[int64][]string
	users     *fakeUserStore
	nextID    int64
}

func newFakeLectureStore(users *fakeUserStore) *fakeLectureStore {
	return &fakeLectureStore{
		lectures:  make(map[int64]*models.Lecture),
		enrolment: make(map[int64][]string),
		users:     users,
		nextID:    1,
	}
}

func (f *fakeLectureStore) Create(_ context.Context, lecture *models.Lecture) error {
	lecture.ID = f.nextID
	f.nextID++
	stored := *lecture
	f.lectures[lecture.ID] = &stored
	return nil
}

func (f *fakeLectureStore) GetByID(_ context.Context, id int64) (*models.Lecture, error) {
	lecture, ok := f.lectures[id]
	if !ok {
		return nil, apperrors.ErrLectureNotFound
	}
	copied := *lecture
	return &copied, nil
}

func (f *fakeLectureStore) ListByAcademy(_ context.Context, academyID string) ([]*models.Lecture, error) {
	var matched []*models.Lecture
	for _, lecture := range f.lectures {
		if lecture.AcademyID == academyID {
			matched = append(matched, lecture)
		}
	}
	return matched, nil
}

func (f *fakeLectureStore) ListByStudent(_ context.Context, userID string) ([]*models.Lecture, error) {
	var matched []*models.Lecture
	for lectureID, students := range f.enrolment {
		for _, enrolled := range students {
			if enrolled == userID {
				matched = append(matched, f.lectures[lectureID])
			}
		}
	}
	return matched, nil
}

func (f *fakeLectureStore) Update(_ context.Context, lecture *models.Lecture) error {
	if _, ok := f.lectures[lecture.ID]; !ok {
		return apperrors.ErrLectureNotFound
	}
	stored := *lecture
	f.lectures[lecture.ID] = &stored
	return nil
}

func (f *fakeLectureStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.lectures[id]; !ok {
		return apperrors.ErrLectureNotFound
	}
	delete(f.lectures, id)
	delete(f.enrolment, id)
	return nil
}

func (f *fakeLectureStore) AddStudent(_ context.Context, lectureID int64, userID string) error {
	for _, enrolled := range f.enrolment[lectureID] {
		if enrolled == userID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	f.enrolment[lectureID] = append(f.enrolment[lectureID], userID)
	return nil
}

func (f *fakeLectureStore) RemoveStudent(_ context.Context, lectureID int64, userID string) error {
	students := f.enrolment[lectureID]
	for i, enrolled := range students {
		if enrolled == userID {
			f.enrolment[lectureID] = append(students[:i], students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeLectureStore) ListStudents(_ context.Context, lectureID int64) ([]*models.User, error) {
	var students []*models.User
	for _, userID := range f.enrolment[lectureID] {
		if user, ok := f.users.users[userID]; ok {
			students = append(students, user)
		}
	}
	return students, nil
}

// fakeExamStore is an in-memory ExamStore mirroring repository error
// semantics.
type fakeExamStore struct {
	examTypes    map[int64]*models.ExamType
	exams        map[int64]*models.Exam
	nextID       int64
	statsRefresh []int64
}

func newFakeExamStore() *fakeExamStore {
	return &fakeExamStore{
		examTypes: make(map[int64]*models.ExamType),
		exams:     make(map[int64]*models.Exam),
		nextID:    1,
	}
}

func (f *fakeExamStore) CreateExamType(_ context.Context, examType *models.ExamType) error {
	for _, existing := range f.examTypes {
		if existing.LectureID == examType.LectureID && existing.ExamTypeName == examType.ExamTypeName {
			return apperrors.ErrExamTypeExists
		}
	}
	examType.ID = f.nextID
	f.nextID++
	stored := *examType
	f.examTypes[examType.ID] = &stored
	return nil
}

func (f *fakeExamStore) ListExamTypes(_ context.Context, lectureID int64) ([]*models.ExamType, error) {
	var matched []*models.ExamType
	for _, examType := range f.examTypes {
		if examType.LectureID == lectureID {
			matched = append(matched, examType)
		}
	}
	return matched, nil
}

func (f *fakeExamStore) DeleteExamType(_ context.Context, lectureID, examTypeID int64) error {
	examType, ok := f.examTypes[examTypeID]
	if !ok || examType.LectureID != lectureID {
		return apperrors.ErrExamTypeNotFound
	}
	delete(f.examTypes, examTypeID)
	return nil
}

func (f *fakeExamStore) CreateExam(_ context.Context, exam *models.Exam) error {
	exam.ID = f.nextID
	f.nextID++
	stored := *exam
	f.exams[exam.ID] = &stored
	return nil
}

func (f *fakeExamStore) GetExam(_ context.Context, lectureID, examID int64) (*models.Exam, error) {
	exam, ok := f.exams[examID]
	if !ok || exam.LectureID != lectureID {
		return nil, apperrors.ErrExamNotFound
	}
	copied := *exam
	return &copied, nil
}

func (f *fakeExamStore) ListExams(_ context.Context, lectureID int64) ([]*models.Exam, error) {
	var matched []*models.Exam
	for _, exam := range f.exams {
		if exam.LectureID == lectureID {
			matched = append(matched, exam)
		}
	}
	return matched, nil
}

func (f *fakeExamStore) UpdateExamStats(_ context.Context, examID int64) error {
	if _, ok := f.exams[examID]; !ok {
		return apperrors.ErrExamNotFound
	}
	f.statsRefresh = append(f.statsRefresh, examID)
	return nil
}

func (f *fakeExamStore) DeleteExam(_ context.Context, lectureID, examID int64) error {
	exam, ok := f.exams[examID]
	if !ok || exam.LectureID != lectureID {
		return apperrors.ErrExamNotFound
	}
	delete(f.exams, examID)
	return nil
}

// fakeScoreStore is an in-memory ScoreStore mirroring repository error
// semantics.
type fakeScoreStore struct {
	scores map[int64]map[string]int
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{scores: make(map[int64]map[string]int)}
}

func (f *fakeScoreStore) Create(_ context.Context, score *models.Score) error {
	byUser := f.scores[score.ExamID]
	if byUser == nil {
		byUser = make(map[string]int)
		f.scores[score.ExamID] = byUser
	}
	if _, exists := byUser[score.UserID]; exists {
		return apperrors.ErrScoreAlreadyExists
	}
	byUser[score.UserID] = score.Score
	return nil
}

func (f *fakeScoreStore) Update(_ context.Context, score *models.Score) error {
	byUser := f.scores[score.ExamID]
	if _, exists := byUser[score.UserID]; !exists {
		return apperrors.ErrScoreNotFound
	}
	byUser[score.UserID] = score.Score
	return nil
}

func (f *fakeScoreStore) ListByExam(_ context.Context, examID int64) ([]*models.Score, error) {
	var scores []*models.Score
	for userID, value := range f.scores[examID] {
		scores = append(scores, &models.Score{ExamID: examID, UserID: userID, Score: value})
	}
	return scores, nil
}

var errViewCounterDown = errors.New("counter update failed")
