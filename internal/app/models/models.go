package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleParent  Role = "PARENT"
	RoleChief   Role = "CHIEF"
)

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleParent, RoleChief:
		return true
	}
	return false
}

// RegistrationStatus defines the lifecycle of a join request
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "PENDING"
	RegistrationApproved RegistrationStatus = "APPROVED"
	RegistrationRejected RegistrationStatus = "REJECTED"
)

// AcademyStatus defines the lifecycle of an academy
type AcademyStatus string

const (
	AcademyPending  AcademyStatus = "PENDING"
	AcademyActive   AcademyStatus = "ACTIVE"
	AcademyRejected AcademyStatus = "REJECTED"
)
