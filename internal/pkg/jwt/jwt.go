package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/cache"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenTypeAccess is the only token type accepted on API routes.
const TokenTypeAccess = "access"

var (
	ErrMissingClaims = errors.New("access token is missing required claims")
	ErrInvalidRole   = errors.New("access token carries an unknown role")
	ErrInvalidType   = errors.New("token is not an access token")
	ErrTokenRevoked  = errors.New("access token has been revoked")
)

type Service interface {
	GenerateAccessToken(identity user.Identity) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth

	// RevokeToken rejects token until expiresAt, after which it is invalid anyway.
	RevokeToken(token string, expiresAt time.Time)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	revoked                   cache.TTLStore
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration, revoked cache.TTLStore) *JWTService {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revoked:                   revoked,
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(identity user.Identity) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id":     identity.UserID,
		"employee_id": identity.EmployeeID,
		"role":        string(identity.Role),
		"type":        TokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string, expiresAt time.Time) {
	j.revoked.Set(revokedKey(token), "1", expiresAt.Sub(j.now()))
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	_, revoked := j.revoked.Get(revokedKey(token))
	return revoked
}

func revokedKey(token string) string {
	return "revoked:" + token
}

// IdentityFromContext reads the caller from the verified token jwtauth stored in ctx.
func IdentityFromContext(ctx context.Context) (user.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Identity{}, err
	}

	userID, _ := claims["user_id"].(string)
	employeeID, _ := claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	if userID == "" {
		return user.Identity{}, ErrMissingClaims
	}

	role, ok := user.ParseRole(roleStr)
	if !ok {
		return user.Identity{}, ErrInvalidRole
	}

	return user.Identity{UserID: userID, EmployeeID: employeeID, Role: role}, nil
}

// MustEmployee returns the caller's employee ID, or user.ErrEmployeeIDRequired
// when the token is not bound to an employee.
func MustEmployee(ctx context.Context) (user.Identity, error) {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return user.Identity{}, err
	}
	if identity.EmployeeID == "" {
		return user.Identity{}, user.ErrEmployeeIDRequired
	}
	return identity, nil
}
