package parser

import "testing"

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  營業收入  ", "營業收入"},
		{"營業\n收入", "營業收入"},
		{"營業\t收 入\r", "營業收入"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeLabel(c.in); got != c.want {
			t.Fatalf("NormalizeLabel(%q) want=%q got=%q", c.in, c.want, got)
		}
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	keywords := []string{"金額", "amount"}

	if !ContainsAny("本月金額(千元)", keywords) {
		t.Fatalf("expected CJK substring match")
	}
	if !ContainsAny("Total Amount", keywords) {
		t.Fatalf("expected case-insensitive match")
	}
	if ContainsAny("項目", keywords) {
		t.Fatalf("unexpected match")
	}
}
