package dto

// RegisterRequest is the request body for participant registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for participant login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	ParticipantID string `json:"participant_id"`
	Username      string `json:"username"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ContributionRequest is the request body for submitting an encrypted
// contribution. Ciphertext is the base64-encoded external engine form;
// Proof binds it to the authenticated submitter.
type ContributionRequest struct {
	Ciphertext string `json:"ciphertext" binding:"required,base64"`
	Proof      string `json:"proof" binding:"required,max=512"`
}

// ContributionResponse is the response body for an accepted contribution.
type ContributionResponse struct {
	ContributionHandle string `json:"contribution_handle"`
	TotalHandle        string `json:"total_handle"`
}

// TotalHandleResponse is the response body for handle queries. Handle is
// null when the identity has not accumulated anything yet.
type TotalHandleResponse struct {
	OwnerID string  `json:"owner_id"`
	Handle  *string `json:"handle"`
}

// ShareRequest is the request body for granting a viewer decrypt-rights on
// the caller's current total.
type ShareRequest struct {
	ViewerID string `json:"viewer_id" binding:"required,uuid"`
}

// ShareResponse reports which handle the share applied to.
type ShareResponse struct {
	Handle   string `json:"handle"`
	ViewerID string `json:"viewer_id"`
}

// PublishResponse reports which handle was made public.
type PublishResponse struct {
	Handle string `json:"handle"`
}

// DecryptRequest is the request body for decrypting a handle.
type DecryptRequest struct {
	Handle string `json:"handle" binding:"required,ct_handle"`
}

// DecryptResponse carries the recovered plaintext value.
type DecryptResponse struct {
	Handle string `json:"handle"`
	Value  uint64 `json:"value"`
}

// GrantResponse is one entry of a handle's grant list.
type GrantResponse struct {
	Kind      string  `json:"kind"`
	GranteeID *string `json:"grantee_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// GrantListResponse wraps the grants on a handle.
type GrantListResponse struct {
	Handle string          `json:"handle"`
	Grants []GrantResponse `json:"grants"`
}

// EventResponse is one entry of the audit event log.
type EventResponse struct {
	ID                 string  `json:"id"`
	Type               string  `json:"type"`
	OwnerID            string  `json:"owner_id"`
	ViewerID           *string `json:"viewer_id,omitempty"`
	ContributionHandle *string `json:"contribution_handle,omitempty"`
	Handle             string  `json:"handle"`
	CreatedAt          string  `json:"created_at"`
}

// EventListResponse wraps an identity's audit events.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
}
