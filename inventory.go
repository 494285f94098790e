package tipatask

import (
	"context"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// InventoryAPI groups warehouses, stocked items and movements.
type InventoryAPI struct {
	app *App
}

func (i InventoryAPI) Warehouses(ctx context.Context) ([]model.Warehouse, error) {
	return getRecords[model.Warehouse](ctx, i.app, "warehouses")
}

func (i InventoryAPI) SetWarehouses(ctx context.Context, warehouses []model.Warehouse) error {
	return setRecords(ctx, i.app, "warehouses", warehouses)
}

func (i InventoryAPI) Items(ctx context.Context) ([]model.InventoryItem, error) {
	return getRecords[model.InventoryItem](ctx, i.app, "inventoryItems")
}

func (i InventoryAPI) SetItems(ctx context.Context, items []model.InventoryItem) error {
	return setRecords(ctx, i.app, "inventoryItems", items)
}

func (i InventoryAPI) Movements(ctx context.Context) ([]model.StockMovement, error) {
	return getRecords[model.StockMovement](ctx, i.app, "stockMovements")
}

func (i InventoryAPI) SetMovements(ctx context.Context, movements []model.StockMovement) error {
	return setRecords(ctx, i.app, "stockMovements", movements)
}
