package session

import (
	"errors"
	"testing"

	"profitlens/internal/model"
)

func TestManager_ReplaceAndReset(t *testing.T) {
	t.Parallel()

	m := NewManager()

	if totals, _ := m.Totals(); totals != nil {
		t.Fatalf("new manager must have no totals")
	}

	totals := model.NewStatementTotals()
	totals.Sums[model.FieldRevenue] = 100
	m.ReplaceTotals(totals, "report.xlsx")

	got, source := m.Totals()
	if got == nil || got.Sums[model.FieldRevenue] != 100 {
		t.Fatalf("totals not replaced: %v", got)
	}
	if source != "report.xlsx" {
		t.Fatalf("source want=report.xlsx got=%s", source)
	}

	m.AddField("雜項支出", -50, "")
	m.Reset()

	if totals, source := m.Totals(); totals != nil || source != "" {
		t.Fatalf("reset must clear totals")
	}
	if fields := m.Fields(); len(fields) != 0 {
		t.Fatalf("reset must clear fields, got %d", len(fields))
	}
}

func TestManager_FieldCRUD(t *testing.T) {
	t.Parallel()

	m := NewManager()

	f1 := m.AddField("  海外收入 ", 500, "分公司")
	if f1.ID == "" {
		t.Fatalf("field must get an id")
	}
	if f1.Name != "海外收入" {
		t.Fatalf("name must be trimmed, got %q", f1.Name)
	}

	f2 := m.AddField("雜項支出", -50, "")

	fields := m.Fields()
	if len(fields) != 2 {
		t.Fatalf("want 2 fields, got %d", len(fields))
	}
	// 保持新增顺序
	if fields[0].ID != f1.ID || fields[1].ID != f2.ID {
		t.Fatalf("field order not preserved")
	}

	updated, err := m.UpdateField(f2.ID, "雜項收入", 80, "改为收入")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "雜項收入" || updated.Value != 80 || updated.Note != "改为收入" {
		t.Fatalf("unexpected updated field: %+v", updated)
	}

	if _, err := m.UpdateField("missing", "x", 1, ""); !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("want ErrFieldNotFound, got %v", err)
	}

	if err := m.DeleteField(f1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.DeleteField(f1.ID); !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("second delete want ErrFieldNotFound, got %v", err)
	}
	if fields := m.Fields(); len(fields) != 1 || fields[0].ID != f2.ID {
		t.Fatalf("unexpected fields after delete: %+v", fields)
	}
}

func TestManager_PromoteExtra(t *testing.T) {
	t.Parallel()

	m := NewManager()

	if _, err := m.PromoteExtra("雜項支出"); !errors.Is(err, ErrNoTotals) {
		t.Fatalf("want ErrNoTotals, got %v", err)
	}

	totals := model.NewStatementTotals()
	totals.Extras["雜項支出"] = -50
	m.ReplaceTotals(totals, "report.xlsx")

	field, err := m.PromoteExtra("雜項支出")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if field.Name != "雜項支出" || field.Value != -50 {
		t.Fatalf("unexpected promoted field: %+v", field)
	}

	// 解析结果本身保持不变
	got, _ := m.Totals()
	if got.Extras["雜項支出"] != -50 {
		t.Fatalf("extras must stay intact after promote")
	}

	if _, err := m.PromoteExtra("不存在"); !errors.Is(err, ErrExtraNotFound) {
		t.Fatalf("want ErrExtraNotFound, got %v", err)
	}
}
