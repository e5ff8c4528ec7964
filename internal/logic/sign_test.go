package logic

import "testing"

func TestSignDenotations(t *testing.T) {
	cases := []struct {
		sign Sign
		want TVSet
	}{
		{T, TrueBit},
		{F, FalseBit},
		{M, TrueBit | UndefinedBit},
		{N, UndefinedBit},
	}
	for _, c := range cases {
		if got := c.sign.Denotes(); got != c.want {
			t.Errorf("Denotes(%v) = %b, want %b", c.sign, got, c.want)
		}
	}
}

// The closure test is denotation disjointness, not sign inequality.
// t/m overlap on true and m/n overlap on undefined, so neither pair
// closes a branch.
func TestSignDisjointness(t *testing.T) {
	disjoint := map[[2]Sign]bool{
		{T, T}: false, {T, F}: true, {T, M}: false, {T, N}: true,
		{F, T}: true, {F, F}: false, {F, M}: true, {F, N}: true,
		{M, T}: false, {M, F}: true, {M, M}: false, {M, N}: false,
		{N, T}: true, {N, F}: true, {N, M}: false, {N, N}: false,
	}
	for pair, want := range disjoint {
		got := pair[0].Denotes().Disjoint(pair[1].Denotes())
		if got != want {
			t.Errorf("Disjoint(%v, %v) = %v, want %v", pair[0], pair[1], got, want)
		}
	}
}

func TestSignFor(t *testing.T) {
	for _, v := range Values() {
		s := SignFor(v)
		den := s.Denotes()
		if !den.Contains(v) {
			t.Errorf("SignFor(%v) = %v, which does not denote %v", v, s, v)
		}
		for _, other := range Values() {
			if other != v && den.Contains(other) {
				t.Errorf("SignFor(%v) = %v is not exact: also denotes %v", v, s, other)
			}
		}
	}
}

func TestParseSign(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Sign
	}{
		{"t", T}, {"T", T}, {"f", F}, {"m", M}, {"n", N},
	} {
		got, err := ParseSign(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParseSign(%q) = %v, %v, want %v", c.in, got, err, c.want)
		}
	}
	if _, err := ParseSign("x"); err == nil {
		t.Errorf("ParseSign(\"x\") should fail")
	}
}
