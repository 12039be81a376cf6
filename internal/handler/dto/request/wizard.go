package request

type OpenSessionRequest struct {
	TargetID string `json:"targetId" binding:"required"`
}

type SelectSourceRequest struct {
	SourceID string `json:"sourceId" binding:"required"`
}

// Accepted is a pointer so an explicit false passes the required check.
type AcceptPolicyRequest struct {
	Accepted *bool `json:"accepted" binding:"required"`
}

type ToggleAddOnRequest struct {
	AddOnID string `json:"addOnId" binding:"required"`
}
