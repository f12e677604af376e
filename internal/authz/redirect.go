package authz

import (
	"net/url"
	"strings"

	"bioacoustic-monitor/internal/domain/profile"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
	AdminPath     = "/admin"
)

var publicPaths = map[string]bool{
	"/":              true,
	LoginPath:        true,
	"/auth/callback": true,
	"/health":        true,
}

func IsPublicPath(path string) bool {
	return publicPaths[path]
}

func isAdminPath(path string) bool {
	return path == AdminPath || strings.HasPrefix(path, AdminPath+"/")
}

// Redirect returns the location a navigation request for path should be
// sent to, or "" when it may proceed.
func Redirect(role profile.Role, authenticated bool, path string) string {
	if IsPublicPath(path) {
		return ""
	}
	if !authenticated {
		return LoginPath + "?redirect=" + url.QueryEscape(path)
	}
	if role == profile.RoleSuperAdmin && path == DashboardPath {
		return AdminPath
	}
	if role != profile.RoleSuperAdmin && isAdminPath(path) {
		return DashboardPath
	}
	return ""
}
