package middleware

import (
	"net/http"
	"strings"

	"bioacoustic-monitor/internal/authz"
	domainProfile "bioacoustic-monitor/internal/domain/profile"
	"bioacoustic-monitor/internal/logger"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	UserIDKey = "userID"
	RoleKey   = "role"

	accessTokenCookie = "access_token"
)

// Authenticator resolves a bearer token to a principal: the token is
// verified, then the caller's profile is loaded for role and tenant.
type Authenticator struct {
	secret   string
	profiles domainProfile.Repository
}

func NewAuthenticator(secret string, profiles domainProfile.Repository) *Authenticator {
	return &Authenticator{secret: secret, profiles: profiles}
}

func (a *Authenticator) principal(c *gin.Context, token string) (authz.Principal, bool) {
	if token == "" {
		return authz.Principal{}, false
	}

	claims, err := utils.ValidateToken(token, a.secret)
	if err != nil {
		return authz.Principal{}, false
	}
	userID, err := claims.UserID()
	if err != nil {
		logger.Warn("Token subject is not a user id", zap.String("request_id", GetRequestID(c)), zap.Error(err))
		return authz.Principal{}, false
	}

	// The profile policy admits a caller reading their own row.
	ctx := authz.WithPrincipal(c.Request.Context(), authz.Principal{UserID: userID})
	profile, err := a.profiles.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("No profile for authenticated user",
			zap.String("user_id", userID.String()),
			zap.String("request_id", GetRequestID(c)),
			zap.Error(err),
		)
		return authz.Principal{}, false
	}

	return authz.FromProfile(profile), true
}

// Required rejects requests without a valid token and profile with 401.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := a.principal(c, requestToken(c))
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthenticated")
			c.Abort()
			return
		}

		setPrincipal(c, p)
		c.Next()
	}
}

// Navigation applies the view routing rules: unauthenticated visitors go to
// the login page and each role is kept on its own landing area.
func (a *Authenticator) Navigation() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := a.principal(c, requestToken(c))
		if ok {
			setPrincipal(c, p)
		}

		if target := authz.Redirect(p.Role, ok, c.Request.URL.Path); target != "" {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

func setPrincipal(c *gin.Context, p authz.Principal) {
	c.Request = c.Request.WithContext(authz.WithPrincipal(c.Request.Context(), p))
	c.Set(UserIDKey, p.UserID)
	c.Set(RoleKey, p.Role)
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requestToken also accepts the session cookie set by the web client, since
// page navigations carry no Authorization header. Browsers cannot set headers
// on websocket upgrades either, so those may pass the token as a query param.
func requestToken(c *gin.Context) string {
	if t := bearerToken(c); t != "" {
		return t
	}
	if t, err := c.Cookie(accessTokenCookie); err == nil && t != "" {
		return t
	}
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		return c.Query(accessTokenCookie)
	}
	return ""
}

// GetUserID returns the authenticated user id, or uuid.Nil.
func GetUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
