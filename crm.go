package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// CRMAPI groups the customer-facing collections.
type CRMAPI struct {
	app *App
}

func (c CRMAPI) Clients(ctx context.Context) ([]model.Client, error) {
	return getRecords[model.Client](ctx, c.app, "clients")
}

func (c CRMAPI) SetClients(ctx context.Context, clients []model.Client) error {
	return setRecords(ctx, c.app, "clients", clients)
}

func (c CRMAPI) Contracts(ctx context.Context) ([]model.Contract, error) {
	return getRecords[model.Contract](ctx, c.app, "contracts")
}

func (c CRMAPI) SetContracts(ctx context.Context, contracts []model.Contract) error {
	return setRecords(ctx, c.app, "contracts", contracts)
}

func (c CRMAPI) Deals(ctx context.Context) ([]model.Deal, error) {
	return getRecords[model.Deal](ctx, c.app, "deals")
}

func (c CRMAPI) SetDeals(ctx context.Context, deals []model.Deal) error {
	return setRecords(ctx, c.app, "deals", deals)
}
