package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// FinanceAPI groups the finance collections and the singleton plan.
type FinanceAPI struct {
	app *App
}

func (f FinanceAPI) Categories(ctx context.Context) ([]model.FinanceCategory, error) {
	return getRecords[model.FinanceCategory](ctx, f.app, "financeCategories")
}

func (f FinanceAPI) SetCategories(ctx context.Context, categories []model.FinanceCategory) error {
	return setRecords(ctx, f.app, "financeCategories", categories)
}

// Plan returns the singleton finance plan. It is compared and overwritten
// as one object during pull, not iterated by id.
func (f FinanceAPI) Plan(ctx context.Context) (model.FinancePlan, error) {
	return getSingleton[model.FinancePlan](ctx, f.app, "financePlan")
}

func (f FinanceAPI) SetPlan(ctx context.Context, plan model.FinancePlan) error {
	return setSingleton(ctx, f.app, "financePlan", plan)
}

func (f FinanceAPI) PurchaseRequests(ctx context.Context) ([]model.PurchaseRequest, error) {
	return getRecords[model.PurchaseRequest](ctx, f.app, "purchaseRequests")
}

func (f FinanceAPI) SetPurchaseRequests(ctx context.Context, requests []model.PurchaseRequest) error {
	return setRecords(ctx, f.app, "purchaseRequests", requests)
}
