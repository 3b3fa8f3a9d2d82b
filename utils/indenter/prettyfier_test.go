package indenter

import "testing"

func TestIndenter(t *testing.T) {
	tests := []struct {
		entries  []string
		expected string
	}{
		{nil, "{\n}"},
		{[]string{"x ↦ +"}, "{x ↦ +}"},
		{[]string{"x ↦ +", "y ↦ -"}, "{\n  x ↦ +,\n  y ↦ -\n}"},
	}

	for _, test := range tests {
		res := Indenter().Start("{").NestStringsSep(",", test.entries...).End("}")
		if res != test.expected {
			t.Errorf("%q printed as %q, expected %q", test.entries, res, test.expected)
		}
	}
}

func TestIndenterNested(t *testing.T) {
	outer := Indenter()
	inner := outer.Nested().Start("[").NestStringsSep(",", "a", "b").End("]")
	res := outer.Start("{").NestStrings(inner).End("}")

	expected := "{[\n    a,\n    b\n  ]}"
	if res != expected {
		t.Errorf("got %q, expected %q", res, expected)
	}
}
