// Package auth gates the app's role screens. Credentials are plaintext
// equality checks against the stored settings; this tool runs locally for a
// small team and carries no hardening.
package auth

import (
	"errors"
	"strings"

	"github.com/capworks/captrack/internal/models"
)

// Role-specific sentinel errors. The login screens show these verbatim.
var (
	ErrInvalidPassword          = errors.New("Invalid Password")
	ErrInvalidManagerPassword   = errors.New("Invalid Manager Password")
	ErrInvalidDashboardPassword = errors.New("Invalid Team Dashboard Password")
	ErrInvalidITPassword        = errors.New("Invalid IT Password")
)

type Role int

const (
	RoleEmployee Role = iota
	RoleManager
	RoleDashboard
	RoleIT
)

// CheckEmployee matches an employee by exact name and verifies the password.
// An unknown name fails the same way as a wrong password.
func CheckEmployee(employees []models.Employee, name, password string) error {
	name = strings.TrimSpace(name)
	for _, emp := range employees {
		if emp.Name == name && emp.Password == password {
			return nil
		}
	}
	return ErrInvalidPassword
}

// CheckManager verifies the shared admin password for the manager dashboard.
func CheckManager(adminPassword, password string) error {
	if password != adminPassword || adminPassword == "" {
		return ErrInvalidManagerPassword
	}
	return nil
}

// CheckDashboard verifies the shared admin password for the team dashboard.
// Same secret as the manager view, different error message.
func CheckDashboard(adminPassword, password string) error {
	if password != adminPassword || adminPassword == "" {
		return ErrInvalidDashboardPassword
	}
	return nil
}

// CheckIT verifies the IT master password for the settings screens.
func CheckIT(itPassword, password string) error {
	if password != itPassword || itPassword == "" {
		return ErrInvalidITPassword
	}
	return nil
}
