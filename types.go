package tipatask

import "github.com/donskikhas/tipatask-sub001/internal/model"

// Public type aliases so callers can import only this package.
type (
	User          = model.User
	Task          = model.Task
	ChecklistItem = model.ChecklistItem
	Project       = model.Project
	Table         = model.Table
	Doc           = model.Doc
	Folder        = model.Folder
	Meeting       = model.Meeting
	ContentPost   = model.ContentPost
	ActivityEntry = model.ActivityEntry
	Status        = model.Status
	Priority      = model.Priority

	Client       = model.Client
	Contract     = model.Contract
	Deal         = model.Deal
	EmployeeInfo = model.EmployeeInfo

	NotificationPrefs = model.NotificationPrefs
	Department        = model.Department
	FinanceCategory   = model.FinanceCategory
	FinancePlan       = model.FinancePlan
	PurchaseRequest   = model.PurchaseRequest
	OrgPosition       = model.OrgPosition
	BusinessProcess   = model.BusinessProcess
	ProcessStep       = model.ProcessStep
	AutomationRule    = model.AutomationRule

	Warehouse     = model.Warehouse
	InventoryItem = model.InventoryItem
	StockMovement = model.StockMovement

	FeatureFlags = model.FeatureFlags
)

// NewID returns a fresh client-assigned record id.
func NewID() string { return model.NewID() }
