package echoapi

import (
	"github.com/onesim/simcase/core/simcase"
	"github.com/onesim/simcase/core/user"
)

type SuccessResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	User    user.User `json:"user"`
}

// StudentResponse is the public listing shape; no role, no hash.
type StudentResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AssignCaseResponse struct {
	Message     string                `json:"message"`
	NewActivity simcase.ActivityEvent `json:"newActivity"`
}

type RegisterPatientResponse struct {
	Message    string `json:"message"`
	InsertedID int    `json:"insertedId"`
}
