package models

// Employee is a configured login identity. Passwords are stored and compared
// in plaintext; this tool runs on a single trusted workstation.
type Employee struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
