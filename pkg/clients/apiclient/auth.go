package apiclient

import (
	"context"
	"net/http"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

// LoginResult is the payload returned on a successful employee login
type LoginResult struct {
	Token    string         `json:"token"`
	Employee model.Employee `json:"employee"`
}

// LoginEmployee signs an employee in and returns the bearer token plus the
// employee profile snapshot
func (c *Client) LoginEmployee(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/employee/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CompanyRegistration is the input for registering a new company account
type CompanyRegistration struct {
	CompanyName string `json:"companyName" validate:"required"`
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

// RegisterCompany creates a company account; the server emails an OTP to verify
func (c *Client) RegisterCompany(ctx context.Context, reg CompanyRegistration) error {
	return c.do(ctx, http.MethodPost, "/api/auth/company/register", reg, nil)
}

// EmployeeRegistration is the input for registering an employee under a company
type EmployeeRegistration struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyCode string `json:"companyCode" validate:"required"`
}

// RegisterEmployee creates an employee account; the server emails an OTP to verify
func (c *Client) RegisterEmployee(ctx context.Context, reg EmployeeRegistration) error {
	return c.do(ctx, http.MethodPost, "/api/auth/employee/register", reg, nil)
}

// VerifyOTP confirms the one-time code emailed during registration
func (c *Client) VerifyOTP(ctx context.Context, email, code string) error {
	body := map[string]string{
		"email": email,
		"otp":   code,
	}
	return c.do(ctx, http.MethodPost, "/api/auth/verify-otp", body, nil)
}

// ResendOTP asks the server to email a fresh one-time code
func (c *Client) ResendOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/api/auth/resend-otp", body, nil)
}

// ForgotPassword starts a password reset; the server emails a reset token
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/api/auth/forgot-password", body, nil)
}

// ResetPassword completes a password reset with the emailed token
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{
		"token":    token,
		"password": newPassword,
	}
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password", body, nil)
}
