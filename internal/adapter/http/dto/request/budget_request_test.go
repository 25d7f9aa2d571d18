package request

import (
	"encoding/json"
	"errors"
	"testing"

	"budget_tracker/internal/domain/entities"
)

func TestNumber_AcceptsNumbersAndStrings(t *testing.T) {
	var d BudgetDetailRequest
	if err := json.Unmarshal([]byte(`{"quantity":"2.5","unit_price":40}`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Quantity != 2.5 || d.UnitPrice != 40 {
		t.Fatalf("unexpected numbers: %v %v", d.Quantity, d.UnitPrice)
	}

	var empty BudgetDetailRequest
	if err := json.Unmarshal([]byte(`{"quantity":"","unit_price":null}`), &empty); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.Quantity != 0 || empty.UnitPrice != 0 {
		t.Fatalf("expected zero defaults, got %v %v", empty.Quantity, empty.UnitPrice)
	}
}

func TestNumber_RejectsGarbage(t *testing.T) {
	var d BudgetDetailRequest
	err := json.Unmarshal([]byte(`{"quantity":"two"}`), &d)
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestNumber_RejectsNonFinite(t *testing.T) {
	for _, body := range []string{`{"quantity":"NaN"}`, `{"quantity":"Inf"}`, `{"unit_price":"-Infinity"}`, `{"unit_price":1e400}`} {
		var d BudgetDetailRequest
		if err := json.Unmarshal([]byte(body), &d); !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("%s: expected ErrInvalidNumber, got %v", body, err)
		}
	}
}

func TestBudgetDetailRequest_ToInput(t *testing.T) {
	r := BudgetDetailRequest{ItemType: "设备", MaterialName: " Crane ", Unit: "台", Quantity: 1, UnitPrice: 900}
	in := r.ToInput()
	if in.ItemType != entities.ItemTypeEquipment {
		t.Fatalf("expected equipment, got %s", in.ItemType)
	}
	if in.ItemName != "Crane" {
		t.Fatalf("expected material_name fallback, got %q", in.ItemName)
	}

	r.ItemName = "Tower crane"
	if got := r.ToInput().ItemName; got != "Tower crane" {
		t.Fatalf("expected item_name to win, got %q", got)
	}
}

func TestCreateBudgetRequest_ResolveProjectID(t *testing.T) {
	var r CreateBudgetRequest
	if err := json.Unmarshal([]byte(`{"project_id":"7","details":[{"item_name":"Steel"}]}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.ResolveProjectID(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if len(r.ToInputs()) != 1 {
		t.Fatalf("expected one detail")
	}

	if got := (CreateBudgetRequest{ProjectID: 1.5}).ResolveProjectID(); got != 0 {
		t.Fatalf("expected 0 for fractional id, got %d", got)
	}
	if got := (CreateBudgetRequest{}).ResolveProjectID(); got != 0 {
		t.Fatalf("expected 0 for missing id, got %d", got)
	}
}
