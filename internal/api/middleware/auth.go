package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tubhub/tubhub-api/internal/api/handler/v1/response"
	"github.com/tubhub/tubhub-api/internal/pkg/jwthelper"
)

var errInvalidToken = errors.New("invalid or missing token")

// ContextKeyUserID is where the authenticator stores the caller's id.
const ContextKeyUserID = "userID"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := a.parseBearer(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}

// VerifyJWTOptional attaches the caller's identity when a valid token
// is present and lets anonymous requests through. Used on endpoints
// that accept anonymous callers, like booking and FAQ questions.
func (a *Authenticator) VerifyJWTOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, ok := a.parseBearer(ctx); ok {
			ctx.Set(ContextKeyUserID, claims.UserID)
		}

		ctx.Next()
	}
}

func (a *Authenticator) parseBearer(ctx *gin.Context) (*jwthelper.Claims, bool) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := jwthelper.ParseToken(a.signingKey, parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}
