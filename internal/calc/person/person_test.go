package person

import (
	"testing"

	"Vitals/internal/calc/calcerr"
)

func TestParseSex(t *testing.T) {
	cases := []struct {
		in   string
		want Sex
		kind calcerr.Kind
	}{
		{"male", Male, ""},
		{" Female ", Female, ""},
		{"m", Male, ""},
		{"", "", calcerr.KindMissingInput},
		{"other", "", calcerr.KindInvalidEnum},
	}
	for _, c := range cases {
		got, err := ParseSex(c.in)
		if c.kind != "" {
			if !calcerr.IsKind(err, c.kind) {
				t.Errorf("ParseSex(%q) err = %v, want kind %s", c.in, err, c.kind)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ParseSex(%q) = %v, %v", c.in, got, err)
		}
	}
}
