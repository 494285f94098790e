package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// OrgAPI groups the org-chart and BPM collections.
type OrgAPI struct {
	app *App
}

func (o OrgAPI) Departments(ctx context.Context) ([]model.Department, error) {
	return getRecords[model.Department](ctx, o.app, "departments")
}

func (o OrgAPI) SetDepartments(ctx context.Context, departments []model.Department) error {
	return setRecords(ctx, o.app, "departments", departments)
}

func (o OrgAPI) Positions(ctx context.Context) ([]model.OrgPosition, error) {
	return getRecords[model.OrgPosition](ctx, o.app, "orgPositions")
}

func (o OrgAPI) SetPositions(ctx context.Context, positions []model.OrgPosition) error {
	return setRecords(ctx, o.app, "orgPositions", positions)
}

func (o OrgAPI) Processes(ctx context.Context) ([]model.BusinessProcess, error) {
	return getRecords[model.BusinessProcess](ctx, o.app, "businessProcesses")
}

func (o OrgAPI) SetProcesses(ctx context.Context, processes []model.BusinessProcess) error {
	return setRecords(ctx, o.app, "businessProcesses", processes)
}

func (o OrgAPI) AutomationRules(ctx context.Context) ([]model.AutomationRule, error) {
	return getRecords[model.AutomationRule](ctx, o.app, "automationRules")
}

func (o OrgAPI) SetAutomationRules(ctx context.Context, rules []model.AutomationRule) error {
	return setRecords(ctx, o.app, "automationRules", rules)
}

func (o OrgAPI) EmployeeInfos(ctx context.Context) ([]model.EmployeeInfo, error) {
	return getRecords[model.EmployeeInfo](ctx, o.app, "employeeInfos")
}

func (o OrgAPI) SetEmployeeInfos(ctx context.Context, infos []model.EmployeeInfo) error {
	return setRecords(ctx, o.app, "employeeInfos", infos)
}
