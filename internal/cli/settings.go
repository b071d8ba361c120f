package cli

import (
	"fmt"
	"strings"

	"github.com/capworks/captrack/internal/models"
	"github.com/capworks/captrack/internal/storage"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Offices:   %s\n", strings.Join(settings.Offices, ", "))
	fmt.Printf("Mentors:   %s\n", strings.Join(settings.Mentors, ", "))
	fmt.Printf("Languages: %s\n", strings.Join(settings.Languages, ", "))
	fmt.Println("Employees:")
	for _, emp := range settings.Employees {
		fmt.Printf("  %s\n", emp.Name)
	}
	return nil
}

// mutateSettings loads, authenticates, applies fn, and saves.
func mutateSettings(ctx *Context, itPassword string, fn func(*storage.Settings) error) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := requireIT(ctx, itPassword); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if err := fn(&settings); err != nil {
		return err
	}
	return ctx.Store.SaveSettings(settings)
}

// addToList appends a value unless it is already present.
func addToList(list []string, value, what string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%s name cannot be empty", what)
	}
	for _, existing := range list {
		if existing == value {
			return nil, fmt.Errorf("%s already exists: %s", what, value)
		}
	}
	return append(list, value), nil
}

// removeFromList drops a value, failing when it is absent.
func removeFromList(list []string, value, what string) ([]string, error) {
	for i, existing := range list {
		if existing == value {
			return append(list[:i], list[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("%s not found: %s", what, value)
}

type OfficeAddCmd struct {
	Name       string `arg:"" help:"Office name."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *OfficeAddCmd) Run(ctx *Context) error {
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		offices, err := addToList(s.Offices, c.Name, "office")
		if err != nil {
			return err
		}
		s.Offices = offices
		fmt.Printf("Added office: %s\n", c.Name)
		return nil
	})
}

type OfficeRemoveCmd struct {
	Name       string `arg:"" help:"Office name."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *OfficeRemoveCmd) Run(ctx *Context) error {
	ok, err := confirm(fmt.Sprintf("Remove office %q?", c.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		offices, err := removeFromList(s.Offices, c.Name, "office")
		if err != nil {
			return err
		}
		s.Offices = offices
		fmt.Printf("Removed office: %s\n", c.Name)
		return nil
	})
}

type MentorAddCmd struct {
	Name       string `arg:"" help:"Mentor name."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *MentorAddCmd) Run(ctx *Context) error {
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		mentors, err := addToList(s.Mentors, c.Name, "mentor")
		if err != nil {
			return err
		}
		s.Mentors = mentors
		fmt.Printf("Added mentor: %s\n", c.Name)
		return nil
	})
}

type MentorRemoveCmd struct {
	Name       string `arg:"" help:"Mentor name."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *MentorRemoveCmd) Run(ctx *Context) error {
	ok, err := confirm(fmt.Sprintf("Remove mentor %q?", c.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		mentors, err := removeFromList(s.Mentors, c.Name, "mentor")
		if err != nil {
			return err
		}
		s.Mentors = mentors
		fmt.Printf("Removed mentor: %s\n", c.Name)
		return nil
	})
}

type LanguageAddCmd struct {
	Name       string `arg:"" help:"Language name."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *LanguageAddCmd) Run(ctx *Context) error {
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		languages, err := addToList(s.Languages, c.Name, "language")
		if err != nil {
			return err
		}
		s.Languages = languages
		fmt.Printf("Added language: %s\n", c.Name)
		return nil
	})
}

type LanguageRemoveCmd struct {
	Name       string `arg:"" help:"Language name."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *LanguageRemoveCmd) Run(ctx *Context) error {
	ok, err := confirm(fmt.Sprintf("Remove language %q?", c.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		languages, err := removeFromList(s.Languages, c.Name, "language")
		if err != nil {
			return err
		}
		s.Languages = languages
		fmt.Printf("Removed language: %s\n", c.Name)
		return nil
	})
}

type EmployeeAddCmd struct {
	Name       string `arg:"" help:"Employee name."`
	Password   string `help:"Login password for the new employee." required:""`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *EmployeeAddCmd) Run(ctx *Context) error {
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("employee name cannot be empty")
		}
		for _, emp := range s.Employees {
			if emp.Name == name {
				return fmt.Errorf("employee already exists: %s", name)
			}
		}
		s.Employees = append(s.Employees, models.Employee{Name: name, Password: c.Password})
		fmt.Printf("Added employee: %s\n", name)
		return nil
	})
}

type EmployeeRemoveCmd struct {
	Name       string `arg:"" help:"Employee name."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *EmployeeRemoveCmd) Run(ctx *Context) error {
	ok, err := confirm(fmt.Sprintf("Remove employee %q? Their saved entries are kept.", c.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		for i, emp := range s.Employees {
			if emp.Name == c.Name {
				s.Employees = append(s.Employees[:i], s.Employees[i+1:]...)
				fmt.Printf("Removed employee: %s\n", c.Name)
				return nil
			}
		}
		return fmt.Errorf("employee not found: %s", c.Name)
	})
}

type SetPasswordCmd struct {
	Role       string `arg:"" enum:"admin,it" help:"Which shared password to change: admin or it."`
	Password   string `arg:"" help:"New password."`
	ITPassword string `help:"IT master password." env:"CAPTRACK_IT_PASSWORD"`
}

func (c *SetPasswordCmd) Run(ctx *Context) error {
	return mutateSettings(ctx, c.ITPassword, func(s *storage.Settings) error {
		if c.Password == "" {
			return fmt.Errorf("password cannot be empty")
		}
		switch c.Role {
		case "admin":
			s.AdminPassword = c.Password
		case "it":
			s.ITPassword = c.Password
		}
		fmt.Printf("Updated %s password.\n", c.Role)
		return nil
	})
}
