package http

import (
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService jwt.Service
}

func NewAuthHandler(jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		jwtService: jwtService,
	}
}

type meResponse struct {
	UserID      string   `json:"userId"`
	EmployeeID  string   `json:"employeeId,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := meResponse{
		UserID:      identity.UserID,
		EmployeeID:  identity.EmployeeID,
		Role:        string(identity.Role),
		Permissions: []string{},
	}
	for _, p := range identity.Permissions() {
		resp.Permissions = append(resp.Permissions, string(p))
	}
	response.Success(w, resp)
}

// Logout implements AuthHandler. The presented access token stays revoked until it expires.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	a.jwtService.RevokeToken(jwtauth.TokenFromHeader(r), token.Expiration())
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}
