// Package snapshot defines the shape of the shared remote document and the
// validated boundary between raw remote JSON and typed records.
//
// The remote store may encode any record collection either as a JSON array
// or as an object-of-records (append-style writes produce the latter). Both
// encodings are accepted; Normalize converts either into a canonical array
// form so that the sync engine can compare values byte-for-byte.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// Kind tells the sync engine which merge rule applies to a collection.
type Kind int

const (
	// KindRecords collections merge by whole-value comparison.
	KindRecords Kind = iota
	// KindTasks is the tasks collection with the id-union status merge.
	KindTasks
	// KindSingleton fields hold a single object, compared as a whole.
	KindSingleton
)

// Collection describes one top-level field of the snapshot document.
type Collection struct {
	Key  string
	Kind Kind
	// Seed is the canonical value used when the local store has nothing
	// for this key.
	Seed      string
	normalize func(raw json.RawMessage) ([]byte, error)
}

// Normalize validates raw remote JSON for this collection and re-encodes it
// in canonical form. Object-of-records input is ordered by object key so the
// result is deterministic.
func (c Collection) Normalize(raw json.RawMessage) ([]byte, error) {
	out, err := c.normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("collection %q: %w", c.Key, err)
	}
	return out, nil
}

var collections = []Collection{
	records[model.User]("users"),
	{Key: "tasks", Kind: KindTasks, Seed: "[]", normalize: normalizeRecords[model.Task]},
	records[model.Project]("projects"),
	records[model.Table]("tables"),
	records[model.Doc]("docs"),
	records[model.Folder]("folders"),
	records[model.Meeting]("meetings"),
	records[model.ContentPost]("contentPosts"),
	records[model.ActivityEntry]("activity"),
	records[model.Status]("statuses"),
	records[model.Priority]("priorities"),
	records[model.Client]("clients"),
	records[model.Contract]("contracts"),
	records[model.EmployeeInfo]("employeeInfos"),
	records[model.Deal]("deals"),
	singleton[model.NotificationPrefs]("notificationPrefs"),
	records[model.Department]("departments"),
	records[model.FinanceCategory]("financeCategories"),
	singleton[model.FinancePlan]("financePlan"),
	records[model.PurchaseRequest]("purchaseRequests"),
	records[model.OrgPosition]("orgPositions"),
	records[model.BusinessProcess]("businessProcesses"),
	records[model.AutomationRule]("automationRules"),
	records[model.Warehouse]("warehouses"),
	records[model.InventoryItem]("inventoryItems"),
	records[model.StockMovement]("stockMovements"),
}

var byKey = func() map[string]Collection {
	m := make(map[string]Collection, len(collections))
	for _, c := range collections {
		m[c.Key] = c
	}
	return m
}()

// Collections returns every snapshot field in document order.
func Collections() []Collection {
	return collections
}

// ByKey looks up a collection descriptor by its snapshot field name.
func ByKey(key string) (Collection, bool) {
	c, ok := byKey[key]
	return c, ok
}

func records[T any](key string) Collection {
	return Collection{Key: key, Kind: KindRecords, Seed: "[]", normalize: normalizeRecords[T]}
}

func singleton[T any](key string) Collection {
	return Collection{Key: key, Kind: KindSingleton, Seed: "{}", normalize: normalizeSingleton[T]}
}

// DecodeRecords accepts either encoding of a record sequence and returns the
// typed records. Object-of-records input is ordered by key.
func DecodeRecords[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]T, 0, len(keys))
		for _, k := range keys {
			var item T
			if err := json.Unmarshal(keyed[k], &item); err != nil {
				return nil, fmt.Errorf("record %q: %w", k, err)
			}
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected array or object, got %q", previewOf(trimmed))
	}
}

func normalizeRecords[T any](raw json.RawMessage) ([]byte, error) {
	items, err := DecodeRecords[T](raw)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func normalizeSingleton[T any](raw json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []byte("{}"), nil
	}
	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// ParseDocument splits a fetched snapshot into its top-level fields.
// A JSON null or empty body yields an empty document, not an error: the
// remote store reports absence that way.
func ParseDocument(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]json.RawMessage{}, nil
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func previewOf(b []byte) string {
	const max = 24
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
