package models

// Admission is one row of the admission queue.
type Admission struct {
	ID         int    `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ClassGrade string `json:"class_grade"`
	AppliedOn  string `json:"applied_on"`
	Status     string `json:"status"`
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// FormValues is a submitted form flattened to field name -> value.
type FormValues map[string]string

// AdmissionFields are the admission form inputs in display order.
var AdmissionFields = []string{
	"full_name",
	"email",
	"phone",
	"class_grade",
	"dob",
	"parent_name",
	"parent_phone",
}

// ContactFields are the contact form inputs in display order.
var ContactFields = []string{"name", "email", "subject", "message"}
