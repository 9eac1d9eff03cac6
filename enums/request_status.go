package enums

type RequestStatus string

const (
	StatusProvisioned         RequestStatus = "Provisioned"
	StatusPendingApproval     RequestStatus = "PendingApproval"
	StatusPendingProvisioning RequestStatus = "PendingProvisioning"
	StatusPendingEvaluation   RequestStatus = "PendingEvaluation"
	StatusDenied              RequestStatus = "Denied"
	StatusFailed              RequestStatus = "Failed"
	StatusRevoked             RequestStatus = "Revoked"
)
