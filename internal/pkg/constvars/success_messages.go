package constvars

const (
	LoginSuccessMessage            = "Successfully logged in"
	LogoutSuccessMessage           = "Successfully logged out"
	HeartbeatSuccessMessage        = "Session activity updated"
	SessionListSuccessMessage      = "Successfully fetched sessions"
	SessionTerminateSuccessMessage = "Session terminated"
	SwitchContextSuccessMessage    = "Context switched"
	ExitContextSuccessMessage      = "Returned to original context"

	CreateSuccessMessage = "Successfully created"
	GetSuccessMessage    = "Successfully fetched"
	UpdateSuccessMessage = "Successfully updated"
	DeleteSuccessMessage = "Successfully deleted"

	DonorRegisterSuccessMessage    = "Donor registered"
	DonorStatusSuccessMessage      = "Donor status fetched"
	DiscardSweepSuccessMessage     = "Expired units discarded"
	RequestDecisionSuccessMessage  = "Request decision recorded"
	ShipmentDispatchSuccessMessage = "Shipment dispatched"
	ReportExportSuccessMessage     = "Report exported"
)
