package life

import "testing"

func TestFromMapDefaults(t *testing.T) {
	c := FromMap(nil)
	if c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", c)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"rows": "64",
		"cols": "48",
		"seed": "-5",
		"fill": "0.25",
		"rule": "maze",
	})
	if c.Rows != 64 || c.Cols != 48 || c.Seed != -5 || c.InitFill != 0.25 {
		t.Fatalf("FromMap overrides = %+v", c)
	}
	if want, _ := Preset("maze"); c.Rule != want {
		t.Fatalf("FromMap rule = %+v, want maze preset", c.Rule)
	}
}

func TestFromMapRuleQuadruple(t *testing.T) {
	c := FromMap(map[string]string{"rule": "4,8,5,8"})
	if c.Rule != (Rule{MinAlive: 4, MaxAlive: 8, MinDead: 5, MaxDead: 8}) {
		t.Fatalf("FromMap quadruple rule = %+v", c.Rule)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"rows": "0",
		"cols": "nope",
		"fill": "1.5",
		"rule": "5,1,3,3",
	})
	if c != DefaultConfig() {
		t.Fatalf("bad values leaked into config: %+v", c)
	}
}
