package ast

import "testing"

func TestSameParamSet(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]struct{}
		want bool
	}{
		{"both empty", ParamSet(), ParamSet(), true},
		{"exact match", ParamSet("gender", "number"), ParamSet("number", "gender"), true},
		{"different sizes", ParamSet("gender"), ParamSet("gender", "number"), false},
		{"disjoint", ParamSet("gender"), ParamSet("number"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameParamSet(tt.a, tt.b); got != tt.want {
				t.Errorf("SameParamSet(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNonterminalRef_String(t *testing.T) {
	if got := (NonterminalRef{Name: "Noun"}).String(); got != "<Noun>" {
		t.Errorf("String() = %q, want <Noun>", got)
	}
	if got := (NonterminalRef{Name: "Noun", Eager: true}).String(); got != "<~Noun>" {
		t.Errorf("String() = %q, want <~Noun>", got)
	}
}
