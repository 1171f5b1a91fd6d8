// Package ui holds the interactive forms that stand in for the previous
// front end's modal dialogs.
package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/beatriciramos/CRM-Frontend/pkg/sdk"
)

// LoginForm prompts for email and password, leaving any value already
// present (for example from a flag) untouched.
func LoginForm(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("login prompt failed: %w", err)
	}
	return nil
}

// CustomerForm prompts for the customer fields not already filled in.
func CustomerForm(input *sdk.CreateCustomerInput) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&input.Name),
		huh.NewInput().Title("Email").Value(&input.Email),
		huh.NewInput().Title("Phone").Value(&input.Phone),
	))
	if err := form.Run(); err != nil {
		return fmt.Errorf("customer form failed: %w", err)
	}
	return nil
}

// AttendanceForm prompts for a new attendance. The customer is chosen
// from the directory the way the previous form's dropdown offered it.
func AttendanceForm(customers []sdk.Customer, input *sdk.CreateAttendanceInput) error {
	customerOptions := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		label := fmt.Sprintf("%s <%s>", c.Name, c.Email)
		customerOptions = append(customerOptions, huh.NewOption(label, c.ID))
	}

	channel := string(sdk.ChannelCall)
	if input.Channel != "" {
		channel = string(input.Channel)
	}
	status := string(sdk.AttendanceOpen)
	if input.Status != "" {
		status = string(input.Status)
	}

	groups := []*huh.Group{}
	if input.CustomerID == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Customer").
				Options(customerOptions...).
				Value(&input.CustomerID),
		))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewInput().Title("Subject").Value(&input.Subject),
		huh.NewText().Title("Notes").Value(&input.Notes),
		huh.NewSelect[string]().
			Title("Channel").
			Options(
				huh.NewOption("Call", string(sdk.ChannelCall)),
				huh.NewOption("Email", string(sdk.ChannelEmail)),
				huh.NewOption("WhatsApp", string(sdk.ChannelWhatsApp)),
				huh.NewOption("Meeting", string(sdk.ChannelMeeting)),
				huh.NewOption("Other", string(sdk.ChannelOther)),
			).
			Value(&channel),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Open", string(sdk.AttendanceOpen)),
				huh.NewOption("Closed", string(sdk.AttendanceClosed)),
			).
			Value(&status),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		return fmt.Errorf("attendance form failed: %w", err)
	}
	input.Channel = sdk.Channel(channel)
	input.Status = sdk.AttendanceStatus(status)
	return nil
}

// UserForm prompts for the admin panel's user fields.
func UserForm(input *sdk.RegisterUserInput) error {
	role := string(sdk.RoleAttendant)
	if input.Role != "" {
		role = string(input.Role)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&input.Name),
		huh.NewInput().Title("Email").Value(&input.Email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&input.Password),
		huh.NewSelect[string]().
			Title("Role").
			Options(
				huh.NewOption("Attendant", string(sdk.RoleAttendant)),
				huh.NewOption("Seller", string(sdk.RoleSeller)),
				huh.NewOption("Admin", string(sdk.RoleAdmin)),
			).
			Value(&role),
	))
	if err := form.Run(); err != nil {
		return fmt.Errorf("user form failed: %w", err)
	}
	input.Role = sdk.Role(role)
	return nil
}

// Confirm displays a yes/no confirmation prompt.
func Confirm(title string, defaultValue bool) (bool, error) {
	confirmed := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}
