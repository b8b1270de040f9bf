package models

// Lecture defines the lecture model based on the 'lectures' table
type Lecture struct {
	ID          int64  `json:"id" db:"id"`
	AcademyID   string `json:"academy_id" db:"academy_id"`
	LectureName string `json:"lecture_name" db:"lecture_name"`
	TeacherID   string `json:"teacher_id" db:"teacher_id"`
	Days        string `json:"days" db:"days"` // e.g. "MON,WED,FRI"
	StartTime   string `json:"start_time" db:"start_time"`
	EndTime     string `json:"end_time" db:"end_time"`
}

// LectureStudent links a student to a lecture based on the 'lecture_students' table
type LectureStudent struct {
	LectureID int64  `json:"lecture_id" db:"lecture_id"`
	UserID    string `json:"user_id" db:"user_id"`
}
