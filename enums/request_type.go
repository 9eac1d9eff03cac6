package enums

type RequestType string

const (
	RequestSelfActivate   RequestType = "SelfActivate"
	RequestSelfDeactivate RequestType = "SelfDeactivate"
)
