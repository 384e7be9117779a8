package customer

import "testing"

func TestNewCustomerRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		if _, err := NewCustomer("p1", name, ""); err != ErrEmptyName {
			t.Errorf("nome %q: esperava ErrEmptyName, obteve %v", name, err)
		}
	}
}

func TestNewCustomerTrimsFields(t *testing.T) {
	c, err := NewCustomer("p1", "  Ana  ", " 841234567 ")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if c.Name != "Ana" {
		t.Errorf("nome: esperava %q, obteve %q", "Ana", c.Name)
	}
	if c.Phone != "841234567" {
		t.Errorf("telefone: esperava %q, obteve %q", "841234567", c.Phone)
	}
	if c.TotalDebt != 0 {
		t.Errorf("cliente novo nasce sem dívida, obteve %v", c.TotalDebt)
	}
}

func TestIsCritical(t *testing.T) {
	cases := []struct {
		debt float64
		want bool
	}{
		{0, false},
		{2499.99, false},
		{CriticalDebtThreshold, true},
		{3000, true},
	}
	for _, tc := range cases {
		c := &Customer{TotalDebt: tc.debt}
		if got := c.IsCritical(); got != tc.want {
			t.Errorf("dívida %v: esperava %v, obteve %v", tc.debt, tc.want, got)
		}
	}
}
