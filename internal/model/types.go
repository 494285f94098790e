// Package model defines the typed records held in the shared snapshot.
//
// The sync core treats every field as opaque payload except the record id
// and the task status. Optional fields are pointers so that "absent" and
// "zero" stay distinguishable across the merge.
package model

// User is an account from the login list. Passwords are stored as-is;
// securing them is explicitly out of scope for this system.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Login    string  `json:"login,omitempty"`
	Password string  `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Color    *string `json:"color,omitempty"`
	IsAdmin  *bool   `json:"isAdmin,omitempty"`
}

// Task is the one record kind with merge-relevant payload: Status drives
// the local-wins conflict rule during pull.
type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      string          `json:"status,omitempty"`
	ProjectID   *string         `json:"projectId,omitempty"`
	AssigneeID  *string         `json:"assigneeId,omitempty"`
	AuthorID    *string         `json:"authorId,omitempty"`
	Priority    *string         `json:"priority,omitempty"`
	StartDate   *string         `json:"startDate,omitempty"`
	DueDate     *string         `json:"dueDate,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	IsArchived  *bool           `json:"isArchived,omitempty"`
	CreatedAt   *string         `json:"createdAt,omitempty"`
	UpdatedAt   *string         `json:"updatedAt,omitempty"`
}

// ChecklistItem is a sub-entry on a task.
type ChecklistItem struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Done  bool   `json:"done,omitempty"`
}

// Project groups tasks.
type Project struct {
	ID          string  `json:"id"`
	Title       string  `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	OwnerID     *string `json:"ownerId,omitempty"`
	FolderID    *string `json:"folderId,omitempty"`
	IsArchived  *bool   `json:"isArchived,omitempty"`
}

// Table is a free-form board table the workspace views render.
type Table struct {
	ID      string     `json:"id"`
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// Doc is a rich-text document.
type Doc struct {
	ID       string  `json:"id"`
	Title    string  `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	FolderID *string `json:"folderId,omitempty"`
	AuthorID *string `json:"authorId,omitempty"`
}

// Folder organizes docs and projects.
type Folder struct {
	ID       string  `json:"id"`
	Title    string  `json:"title,omitempty"`
	ParentID *string `json:"parentId,omitempty"`
}

// Meeting is a scheduled event.
type Meeting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title,omitempty"`
	StartsAt     *string  `json:"startsAt,omitempty"`
	EndsAt       *string  `json:"endsAt,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Link         *string  `json:"link,omitempty"`
}

// ContentPost is a content-plan entry.
type ContentPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	PublishDate *string `json:"publishDate,omitempty"`
	Status      *string `json:"status,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
	Text        *string `json:"text,omitempty"`
}

// ActivityEntry is one line of the bounded activity log.
type ActivityEntry struct {
	ID         string  `json:"id"`
	Timestamp  string  `json:"ts,omitempty"`
	UserID     *string `json:"userId,omitempty"`
	Action     string  `json:"action,omitempty"`
	EntityKind *string `json:"entityKind,omitempty"`
	EntityID   *string `json:"entityId,omitempty"`
	Message    *string `json:"message,omitempty"`
}

// Status is a task-status dictionary entry.
type Status struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Order *int    `json:"order,omitempty"`
	Final *bool   `json:"final,omitempty"`
}

// Priority is a task-priority dictionary entry.
type Priority struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// Client is a CRM counterparty.
type Client struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Company   *string `json:"company,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	ManagerID *string `json:"managerId,omitempty"`
}

// Contract binds a client to an agreement.
type Contract struct {
	ID       string   `json:"id"`
	ClientID *string  `json:"clientId,omitempty"`
	Number   *string  `json:"number,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	SignedAt *string  `json:"signedAt,omitempty"`
	Status   *string  `json:"status,omitempty"`
}

// Deal is a CRM pipeline entry.
type Deal struct {
	ID        string   `json:"id"`
	Title     string   `json:"title,omitempty"`
	ClientID  *string  `json:"clientId,omitempty"`
	Stage     *string  `json:"stage,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	ManagerID *string  `json:"managerId,omitempty"`
	ClosedAt  *string  `json:"closedAt,omitempty"`
}

// EmployeeInfo carries HR payload for a user.
type EmployeeInfo struct {
	ID           string  `json:"id"`
	UserID       *string `json:"userId,omitempty"`
	PositionID   *string `json:"positionId,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	HiredAt      *string `json:"hiredAt,omitempty"`
	BirthDate    *string `json:"birthDate,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// NotificationPrefs is a singleton: per-event toggles for bot notifications.
type NotificationPrefs struct {
	TaskAssigned  *bool `json:"taskAssigned,omitempty"`
	StatusChanged *bool `json:"statusChanged,omitempty"`
	DealMoved     *bool `json:"dealMoved,omitempty"`
	MeetingSoon   *bool `json:"meetingSoon,omitempty"`
	Digest        *bool `json:"digest,omitempty"`
}

// Department is an org-chart node.
type Department struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	ParentID *string `json:"parentId,omitempty"`
	HeadID   *string `json:"headId,omitempty"`
}

// FinanceCategory classifies plan and actual amounts.
type FinanceCategory struct {
	ID   string  `json:"id"`
	Name string  `json:"name,omitempty"`
	Kind *string `json:"kind,omitempty"` // income | expense
}

// FinancePlan is a singleton: planned amounts keyed by "YYYY-MM".
type FinancePlan struct {
	Income  map[string]float64 `json:"income,omitempty"`
	Expense map[string]float64 `json:"expense,omitempty"`
	Comment *string            `json:"comment,omitempty"`
}

// PurchaseRequest is a procurement record.
type PurchaseRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	RequesterID *string  `json:"requesterId,omitempty"`
	Status      *string  `json:"status,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
}

// OrgPosition is a job title in the org chart.
type OrgPosition struct {
	ID           string  `json:"id"`
	Name         string  `json:"name,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	ReportsTo    *string `json:"reportsTo,omitempty"`
}

// BusinessProcess is an ordered set of BPM steps.
type BusinessProcess struct {
	ID    string        `json:"id"`
	Title string        `json:"title,omitempty"`
	Steps []ProcessStep `json:"steps,omitempty"`
}

// ProcessStep is one stage of a business process.
type ProcessStep struct {
	ID         string  `json:"id"`
	Title      string  `json:"title,omitempty"`
	AssigneeID *string `json:"assigneeId,omitempty"`
	Order      *int    `json:"order,omitempty"`
}

// AutomationRule is a trigger/condition/action triple evaluated by the UI
// layer; the core only stores it.
type AutomationRule struct {
	ID        string  `json:"id"`
	Trigger   string  `json:"trigger,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Action    string  `json:"action,omitempty"`
	Enabled   *bool   `json:"enabled,omitempty"`
}

// Warehouse is an inventory location.
type Warehouse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// InventoryItem is a stocked SKU.
type InventoryItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	WarehouseID *string  `json:"warehouseId,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	MinQuantity *float64 `json:"minQuantity,omitempty"`
}

// StockMovement records an inventory in/out transfer.
type StockMovement struct {
	ID          string   `json:"id"`
	ItemID      *string  `json:"itemId,omitempty"`
	WarehouseID *string  `json:"warehouseId,omitempty"`
	Delta       *float64 `json:"delta,omitempty"`
	Reason      *string  `json:"reason,omitempty"`
	Timestamp   *string  `json:"ts,omitempty"`
	ActorID     *string  `json:"actorId,omitempty"`
}

// FeatureFlags is a local-only settings blob; it never syncs.
type FeatureFlags struct {
	Automations  *bool `json:"automations,omitempty"`
	Inventory    *bool `json:"inventory,omitempty"`
	ContentPlan  *bool `json:"contentPlan,omitempty"`
	FinanceBlock *bool `json:"financeBlock,omitempty"`
}
