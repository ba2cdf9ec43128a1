package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"confidential-ledger/internal/adapter/http/dto"
	"confidential-ledger/internal/adapter/http/middleware"
	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/internal/core/ports/mocks"
	"confidential-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Auth Handler Tests ---

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	participantID := uuid.New()
	mockAuth.EXPECT().Register(gomock.Any(), "alice", "password123").Return(&domain.Participant{
		ID:       participantID,
		Username: "alice",
	}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "password123"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, participantID.String(), data["participant_id"])
	assert.Equal(t, "alice", data["username"])
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	// Empty body => binding error
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Binding failures carry the validation code on every endpoint; the
	// accumulator and capability code families mean domain outcomes only.
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp["error_code"])
}

func TestRegister_UsernameExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUsernameExists())

	body, _ := json.Marshal(dto.RegisterRequest{Username: "taken", Password: "password123"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "alice", "password123").Return("jwt-token", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "password123"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "wrongpassword"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Accumulator Handler Tests ---

func authedContext(t *testing.T, identity uuid.UUID, method, target string, body []byte) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxIdentity, identity)
	return w, c
}

func TestSubmitContribution_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	submitter := uuid.New()
	ciphertext := []byte("opaque-engine-ciphertext")
	contribution := domain.HandleOf(ciphertext)
	total := domain.HandleOf([]byte("new-total"))

	mockAcc.EXPECT().SubmitContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.SubmitRequest) (*ports.SubmitResult, error) {
			assert.Equal(t, submitter, req.Submitter)
			assert.Equal(t, ciphertext, req.Ciphertext)
			assert.Equal(t, "valid-proof", req.Proof)
			return &ports.SubmitResult{
				OwnerID:            submitter,
				ContributionHandle: contribution,
				NewTotalHandle:     total,
			}, nil
		})

	body, _ := json.Marshal(dto.ContributionRequest{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Proof:      "valid-proof",
	})

	w, c := authedContext(t, submitter, http.MethodPost, "/api/v1/contributions", body)
	h.SubmitContribution(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, contribution.String(), data["contribution_handle"])
	assert.Equal(t, total.String(), data["total_handle"])
}

func TestSubmitContribution_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/contributions", bytes.NewReader([]byte("{}")))

	h.SubmitContribution(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitContribution_InvalidBase64(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	// "base64" binding tag rejects this before the handler decodes it.
	body, _ := json.Marshal(map[string]string{
		"ciphertext": "not base64 at all!!!",
		"proof":      "p",
	})

	w, c := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/contributions", body)
	h.SubmitContribution(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitContribution_ProofRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	mockAcc.EXPECT().SubmitContribution(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidProof(nil))

	body, _ := json.Marshal(dto.ContributionRequest{
		Ciphertext: base64.StdEncoding.EncodeToString([]byte("ct")),
		Proof:      "bad-proof",
	})

	w, c := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/contributions", body)
	h.SubmitContribution(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACC_001", resp["error_code"])
}

func TestGetMyTotalHandle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	owner := uuid.New()
	handle := domain.HandleOf([]byte("total"))
	mockAcc.EXPECT().GetTotalHandle(gomock.Any(), owner).Return(handle, nil)

	w, c := authedContext(t, owner, http.MethodGet, "/api/v1/totals/me", nil)
	h.GetMyTotalHandle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, handle.String(), data["handle"])
	assert.Equal(t, owner.String(), data["owner_id"])
}

func TestGetMyTotalHandle_NoTotalYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	owner := uuid.New()
	mockAcc.EXPECT().GetTotalHandle(gomock.Any(), owner).Return(domain.NullHandle, nil)

	w, c := authedContext(t, owner, http.MethodGet, "/api/v1/totals/me", nil)
	h.GetMyTotalHandle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Nil(t, data["handle"])
}

func TestGetTotalHandleOf_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	owner := uuid.New()
	handle := domain.HandleOf([]byte("their-total"))
	mockAcc.EXPECT().GetTotalHandle(gomock.Any(), owner).Return(handle, nil)

	w, c := authedContext(t, uuid.New(), http.MethodGet, "/api/v1/totals/"+owner.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: owner.String()}}
	h.GetTotalHandleOf(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, handle.String(), data["handle"])
}

func TestGetTotalHandleOf_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAcc := mocks.NewMockAccumulatorService(ctrl)
	h := NewAccumulatorHandler(mockAcc)

	w, c := authedContext(t, uuid.New(), http.MethodGet, "/api/v1/totals/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.GetTotalHandleOf(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp["error_code"])
}

// --- Capability Handler Tests ---

func TestShareTotal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCap := mocks.NewMockCapabilityService(ctrl)
	h := NewCapabilityHandler(mockCap)

	owner := uuid.New()
	viewer := uuid.New()
	handle := domain.HandleOf([]byte("shared-total"))
	mockCap.EXPECT().ShareTotal(gomock.Any(), owner, viewer).Return(handle, nil)

	body, _ := json.Marshal(dto.ShareRequest{ViewerID: viewer.String()})

	w, c := authedContext(t, owner, http.MethodPost, "/api/v1/totals/share", body)
	h.ShareTotal(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, handle.String(), data["handle"])
	assert.Equal(t, viewer.String(), data["viewer_id"])
}

func TestShareTotal_NoTotalYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCap := mocks.NewMockCapabilityService(ctrl)
	h := NewCapabilityHandler(mockCap)

	mockCap.EXPECT().ShareTotal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.NullHandle, apperror.ErrNoTotalYet())

	body, _ := json.Marshal(dto.ShareRequest{ViewerID: uuid.New().String()})

	w, c := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/totals/share", body)
	h.ShareTotal(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CAP_001", resp["error_code"])
}

func TestShareTotal_InvalidViewerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCap := mocks.NewMockCapabilityService(ctrl)
	h := NewCapabilityHandler(mockCap)

	// "uuid" binding tag rejects it before the service is reached.
	body, _ := json.Marshal(map[string]string{"viewer_id": "not-a-uuid"})

	w, c := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/totals/share", body)
	h.ShareTotal(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMakeTotalPublic_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCap := mocks.NewMockCapabilityService(ctrl)
	h := NewCapabilityHandler(mockCap)

	owner := uuid.New()
	handle := domain.HandleOf([]byte("published-total"))
	mockCap.EXPECT().MakeTotalPublic(gomock.Any(), owner).Return(handle, nil)

	w, c := authedContext(t, owner, http.MethodPost, "/api/v1/totals/publish", nil)
	h.MakeTotalPublic(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, handle.String(), data["handle"])
}

func TestDecrypt_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCap := mocks.NewMockCapabilityService(ctrl)
	h := NewCapabilityHandler(mockCap)

	caller := uuid.New()
	handle := domain.HandleOf([]byte("decryptable"))
	mockCap.EXPECT().DecryptHandle(gomock.Any(), caller, handle).Return(uint64(750), nil)

	body, _ := json.Marshal(dto.DecryptRequest{Handle: handle.String()})

	w, c := authedContext(t, caller, http.MethodPost, "/api/v1/decrypt", body)
	h.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(750), data["value"])
	assert.Equal(t, handle.String(), data["handle"])
}

func TestDecrypt_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCap := mocks.NewMockCapabilityService(ctrl)
	h := NewCapabilityHandler(mockCap)

	handle := domain.HandleOf([]byte("someone-elses"))
	mockCap.EXPECT().DecryptHandle(gomock.Any(), gomock.Any(), handle).
		Return(uint64(0), apperror.ErrDecryptDenied())

	body, _ := json.Marshal(dto.DecryptRequest{Handle: handle.String()})

	w, c := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/decrypt", body)
	h.Decrypt(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CAP_003", resp["error_code"])
}

func TestDecrypt_InvalidHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCap := mocks.NewMockCapabilityService(ctrl)
	h := NewCapabilityHandler(mockCap)

	body, _ := json.Marshal(map[string]string{"handle": "zz"})

	w, c := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/decrypt", body)
	h.Decrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reporting Handler Tests ---

func TestListEvents_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	owner := uuid.New()
	viewer := uuid.New()
	total := domain.HandleOf([]byte("total"))
	events := []domain.AuditEvent{
		*domain.TotalShared(owner, viewer, total),
		*domain.ContributionAccepted(owner, domain.HandleOf([]byte("contribution")), total),
	}
	mockReporting.EXPECT().ListEvents(gomock.Any(), owner, 0).Return(events, nil)

	w, c := authedContext(t, owner, http.MethodGet, "/api/v1/events", nil)
	h.ListEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 2)

	shared := items[0].(map[string]interface{})
	assert.Equal(t, string(domain.EventTotalShared), shared["type"])
	assert.Equal(t, viewer.String(), shared["viewer_id"])
	assert.Nil(t, shared["contribution_handle"])

	accepted := items[1].(map[string]interface{})
	assert.Equal(t, string(domain.EventContributionAccepted), accepted["type"])
	assert.NotEmpty(t, accepted["contribution_handle"])
}

func TestListEvents_WithLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	owner := uuid.New()
	mockReporting.EXPECT().ListEvents(gomock.Any(), owner, 10).Return(nil, nil)

	w, c := authedContext(t, owner, http.MethodGet, "/api/v1/events?limit=10", nil)
	h.ListEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListEvents_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	w, c := authedContext(t, uuid.New(), http.MethodGet, "/api/v1/events?limit=abc", nil)
	h.ListEvents(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListGrants_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	owner := uuid.New()
	handle := domain.HandleOf([]byte("granted"))
	grants := []domain.Grant{
		*domain.SystemGrant(handle),
		*domain.OwnerGrant(handle, owner),
		*domain.PublicGrant(handle),
	}
	mockReporting.EXPECT().ListGrants(gomock.Any(), handle).Return(grants, nil)

	w, c := authedContext(t, owner, http.MethodGet, "/api/v1/handles/"+handle.String()+"/grants", nil)
	c.Params = gin.Params{{Key: "handle", Value: handle.String()}}
	h.ListGrants(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, handle.String(), data["handle"])
	items := data["grants"].([]interface{})
	require.Len(t, items, 3)

	system := items[0].(map[string]interface{})
	assert.Equal(t, string(domain.GranteeSystem), system["kind"])
	assert.Nil(t, system["grantee_id"])

	identity := items[1].(map[string]interface{})
	assert.Equal(t, string(domain.GranteeIdentity), identity["kind"])
	assert.Equal(t, owner.String(), identity["grantee_id"])

	public := items[2].(map[string]interface{})
	assert.Equal(t, string(domain.GranteePublic), public["kind"])
	assert.Nil(t, public["grantee_id"])
}

func TestListGrants_InvalidHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)
	h := NewReportingHandler(mockReporting)

	w, c := authedContext(t, uuid.New(), http.MethodGet, "/api/v1/handles/nope/grants", nil)
	c.Params = gin.Params{{Key: "handle", Value: "nope"}}
	h.ListGrants(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health Check ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	redisDep := deps["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", redisDep["status"])
}
