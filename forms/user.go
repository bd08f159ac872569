package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// UserForm groups validation message helpers for user-related forms
type UserForm struct{}

// RegisterForm contains the text fields of the multipart registration
// request. The avatar and cover image files are read separately.
type RegisterForm struct {
	FullName string `form:"fullname" json:"fullname" binding:"required,min=1,max=100"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Username string `form:"username" json:"username" binding:"required,username,min=3,max=30"`
	Password string `form:"password" json:"password" binding:"required,min=3,max=50"`
}

// LoginForm carries either a username or an email plus the password.
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email" binding:"omitempty,email"`
	Password string `form:"password" json:"password" binding:"required,min=3,max=50"`
}

// ChangePasswordForm contains the old and new passwords
type ChangePasswordForm struct {
	OldPassword string `form:"oldPassword" json:"oldPassword" binding:"required"`
	NewPassword string `form:"newPassword" json:"newPassword" binding:"required,min=3,max=50"`
}

// UpdateAccountForm contains the mutable account text fields
type UpdateAccountForm struct {
	FullName string `form:"fullname" json:"fullname" binding:"required,min=1,max=100"`
	Email    string `form:"email" json:"email" binding:"required,email"`
}

// Email returns the error message for email field validation
func (f UserForm) Email(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your email"
	case "min", "max", "email":
		return "Please enter a valid email"
	default:
		return "Something went wrong, please try again later"
	}
}

// Username returns the error message for username field validation
func (f UserForm) Username(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your username"
	case "username", "min", "max":
		return "Your username should be 3 to 30 letters, digits or underscores"
	default:
		return "Something went wrong, please try again later"
	}
}

// Password returns the error message for password field validation
func (f UserForm) Password(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your password"
	case "min", "max":
		return "Your password should be between 3 and 50 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// FullName returns the error message for fullname field validation
func (f UserForm) FullName(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your full name"
	case "min", "max":
		return "Your full name should be between 1 and 100 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

func (f UserForm) fieldMessage(err validator.FieldError) string {
	switch err.Field() {
	case "Email":
		return f.Email(err.Tag())
	case "Username":
		return f.Username(err.Tag())
	case "Password", "OldPassword", "NewPassword":
		return f.Password(err.Tag())
	case "FullName":
		return f.FullName(err.Tag())
	default:
		return "Something went wrong, please try again later"
	}
}

// Message converts a binding error on any user form into a client
// facing message.
func (f UserForm) Message(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:

		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return "Something went wrong, please try again later"
		}

		for _, err := range err.(validator.ValidationErrors) {
			return f.fieldMessage(err)
		}

	default:
		return "Invalid request"
	}

	return "Something went wrong, please try again later"
}
