package parser

import (
	"testing"

	"profitlens/internal/model"
)

func TestClassify_CanonicalLabels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  model.Field
	}{
		{"營業收入", model.FieldRevenue},
		{"营业收入", model.FieldRevenue},
		{"營收(千元)", model.FieldRevenue},
		{"Total Revenue", model.FieldRevenue},
		{"營業成本", model.FieldCOGS},
		{"销货成本", model.FieldCOGS},
		{"COGS", model.FieldCOGS},
		{"營業利益", model.FieldOperatingIncome},
		{"营业净利", model.FieldOperatingIncome},
		{"Operating Income", model.FieldOperatingIncome},
		{"稅前淨利", model.FieldPreTaxIncome},
		{"税前利润", model.FieldPreTaxIncome},
		{"Income Before Tax", model.FieldPreTaxIncome},
		{"本期淨利", model.FieldNetIncome},
		{"稅後淨利", model.FieldNetIncome},
		{"Net Income", model.FieldNetIncome},
	}
	for _, c := range cases {
		got, ok := Classify(c.label)
		if !ok {
			t.Fatalf("Classify(%q) want=%s got=none", c.label, c.want)
		}
		if got != c.want {
			t.Fatalf("Classify(%q) want=%s got=%s", c.label, c.want, got)
		}
	}
}

func TestClassify_Unmatched(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"雜項支出", "研發費用", "", "   ", "其他"} {
		if got, ok := Classify(label); ok {
			t.Fatalf("Classify(%q) want=none got=%s", label, got)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	t.Parallel()

	// "稅前淨利" 同时含税前与净利关键词，税前科目在前，先命中先得
	got, ok := Classify("稅前淨利")
	if !ok || got != model.FieldPreTaxIncome {
		t.Fatalf("稅前淨利 want=%s got=%s ok=%v", model.FieldPreTaxIncome, got, ok)
	}

	// "營業淨利" 归营业利益而非本期净利
	got, ok = Classify("營業淨利")
	if !ok || got != model.FieldOperatingIncome {
		t.Fatalf("營業淨利 want=%s got=%s ok=%v", model.FieldOperatingIncome, got, ok)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	for i := 0; i < 3; i++ {
		got, ok := Classify("本期淨利")
		if !ok || got != model.FieldNetIncome {
			t.Fatalf("run %d: 本期淨利 want=%s got=%s ok=%v", i, model.FieldNetIncome, got, ok)
		}
	}
}
