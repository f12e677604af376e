package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bioacoustic-monitor/internal/authz"
	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainProfile "bioacoustic-monitor/internal/domain/profile"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/infrastructure/identity"
	"bioacoustic-monitor/internal/middleware"
	"bioacoustic-monitor/internal/mocks"
	"bioacoustic-monitor/internal/usecase/device"
	"bioacoustic-monitor/internal/usecase/invite"
	appErrors "bioacoustic-monitor/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asRole injects a principal the way the authentication middleware would.
func asRole(role domainProfile.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := authz.Principal{UserID: uuid.New(), Role: role}
		c.Request = c.Request.WithContext(authz.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{appErrors.ErrInvalidToken, http.StatusUnauthorized},
		{fmt.Errorf("list: %w", appErrors.ErrPermissionDenied), http.StatusForbidden},
		{domainDevice.ErrDeviceNotFound, http.StatusNotFound},
		{domainOrg.ErrSlugTaken, http.StatusConflict},
		{appErrors.Validation("bad", nil), http.StatusBadRequest},
		{appErrors.Wrap("get site", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func newDeviceRouter(t *testing.T, role domainProfile.Role) (*gin.Engine, *mocks.MockDeviceRepository, *mocks.MockRoomRepository) {
	ctrl := gomock.NewController(t)
	devices := mocks.NewMockDeviceRepository(ctrl)
	rooms := mocks.NewMockRoomRepository(ctrl)
	h := NewDeviceHandler(device.NewService(devices, rooms, mocks.NewMockBuildingRepository(ctrl), nil))

	r := gin.New()
	api := r.Group("/api/v1", asRole(role))
	h.RegisterRoutes(api)
	h.RegisterAdminRoutes(api.Group("/admin"))
	return r, devices, rooms
}

func TestClaimDevice_UnknownUIDIs404(t *testing.T) {
	r, devices, rooms := newDeviceRouter(t, domainProfile.RoleOrgAdmin)
	roomID := uuid.New()

	rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(&domainSite.Room{ID: roomID, Active: true}, nil)
	devices.EXPECT().GetByUID(gomock.Any(), "RPI-404").Return(nil, domainDevice.ErrDeviceNotFound)

	w := doJSON(r, http.MethodPost, "/api/v1/devices/claim", map[string]string{"device_uid": "RPI-404", "room_id": roomID.String()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"device not found"}`, w.Body.String())
}

func TestClaimDevice_ViewerForbidden(t *testing.T) {
	r, _, _ := newDeviceRouter(t, domainProfile.RoleViewer)

	w := doJSON(r, http.MethodPost, "/api/v1/devices/claim", map[string]string{"device_uid": "RPI-001", "room_id": uuid.NewString()})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSimulator_EmptySiteIs400(t *testing.T) {
	r, devices, _ := newDeviceRouter(t, domainProfile.RoleSuperAdmin)
	siteID := uuid.New()

	devices.EXPECT().ListBySite(gomock.Any(), siteID).Return(nil, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/simulator/sites/"+siteID.String()+"/total-outage", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"site has no devices"}`, w.Body.String())
}

func TestInventory_RequiresSuperAdmin(t *testing.T) {
	r, _, _ := newDeviceRouter(t, domainProfile.RoleOrgAdmin)

	w := doJSON(r, http.MethodGet, "/api/v1/admin/inventory", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestExportInventory(t *testing.T) {
	r, devices, _ := newDeviceRouter(t, domainProfile.RoleSuperAdmin)

	devices.EXPECT().ListInventory(gomock.Any()).Return([]*domainDevice.Device{{DeviceUID: "RPI-100"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/admin/inventory/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inventory-")
	assert.NotZero(t, w.Body.Len())
}

type inviteFixture struct {
	router   *gin.Engine
	orgs     *mocks.MockOrganizationRepository
	profiles *mocks.MockProfileRepository
	inviter  *mocks.MockInviter
}

func newInviteFixture(t *testing.T, auth gin.HandlerFunc) *inviteFixture {
	ctrl := gomock.NewController(t)
	f := &inviteFixture{
		orgs:     mocks.NewMockOrganizationRepository(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		inviter:  mocks.NewMockInviter(ctrl),
	}
	h := NewInvitationHandler(invite.NewService(f.orgs, f.profiles, f.inviter, "https://app.example.com"))

	f.router = gin.New()
	h.RegisterAdminRoutes(f.router.Group("/api/v1/admin", auth))
	return f
}

func TestInvite_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := middleware.NewAuthenticator("secret", mocks.NewMockProfileRepository(ctrl))
	f := newInviteFixture(t, auth.Required())

	w := doJSON(f.router, http.MethodPost, "/api/v1/admin/invitations", map[string]string{"email": "a@b.io"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"unauthenticated"}`, w.Body.String())
}

func TestInvite_NotSuperAdmin(t *testing.T) {
	f := newInviteFixture(t, asRole(domainProfile.RoleOrgAdmin))

	w := doJSON(f.router, http.MethodPost, "/api/v1/admin/invitations", map[string]string{"email": "a@b.io"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"forbidden"}`, w.Body.String())
}

func TestInvite_MissingFields(t *testing.T) {
	f := newInviteFixture(t, asRole(domainProfile.RoleSuperAdmin))

	w := doJSON(f.router, http.MethodPost, "/api/v1/admin/invitations", map[string]string{"email": "a@b.io"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvite_OrganizationNotFound(t *testing.T) {
	f := newInviteFixture(t, asRole(domainProfile.RoleSuperAdmin))
	orgID := uuid.New()

	f.orgs.EXPECT().GetByID(gomock.Any(), orgID).Return(nil, domainOrg.ErrOrganizationNotFound)

	w := doJSON(f.router, http.MethodPost, "/api/v1/admin/invitations", map[string]string{"email": "a@b.io", "organization_id": orgID.String()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"organization not found"}`, w.Body.String())
}

func TestInvite_ProviderFailure(t *testing.T) {
	f := newInviteFixture(t, asRole(domainProfile.RoleSuperAdmin))
	org := &domainOrg.Organization{ID: uuid.New(), Name: "Granja"}

	f.orgs.EXPECT().GetByID(gomock.Any(), org.ID).Return(org, nil)
	f.inviter.EXPECT().Invite(gomock.Any(), gomock.Any()).Return(nil, errors.New("email rate limit exceeded"))

	w := doJSON(f.router, http.MethodPost, "/api/v1/admin/invitations", map[string]string{"email": "a@b.io", "organization_id": org.ID.String()})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"invitation failed: email rate limit exceeded"}`, w.Body.String())
}

func TestInvite_Success(t *testing.T) {
	f := newInviteFixture(t, asRole(domainProfile.RoleSuperAdmin))
	org := &domainOrg.Organization{ID: uuid.New(), Name: "Granja Norte"}

	f.orgs.EXPECT().GetByID(gomock.Any(), org.ID).Return(org, nil)
	f.inviter.EXPECT().Invite(gomock.Any(), gomock.Any()).Return(&identity.InvitedUser{ID: uuid.New()}, nil)
	f.profiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	w := doJSON(f.router, http.MethodPost, "/api/v1/admin/invitations", map[string]string{"email": "a@b.io", "organization_id": org.ID.String()})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Invitation sent to a@b.io","organization":"Granja Norte"}`, w.Body.String())
}
