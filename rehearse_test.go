package karifa

import (
	"testing"
	"time"

	"libdb.so/karifa/animation"
)

func TestRehearse(t *testing.T) {
	for _, name := range animation.CatalogNames() {
		t.Run(name, func(t *testing.T) {
			c, err := animation.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}

			results, err := Rehearse(c, 5*time.Millisecond, 10*time.Second)
			if err != nil {
				t.Fatalf("Rehearse: %v", err)
			}
			if len(results) != c.Len() {
				t.Fatalf("got %d results, want %d", len(results), c.Len())
			}

			for i, r := range results {
				if r.Index != i || r.Name != c.Animations[i].Name {
					t.Fatalf("result %d is %+v", i, r)
				}
				if r.Steps == 0 {
					t.Errorf("%s never evaluated an instruction", r.Name)
				}
			}

			if !results[0].Lit {
				t.Errorf("%s never lit an LED", results[0].Name)
			}
			if off := results[c.Off()]; off.Lit {
				t.Errorf("off animation lit an LED")
			}
		})
	}
}

func TestRehearseRejectsFineTick(t *testing.T) {
	c, err := animation.Lookup("classic")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := Rehearse(c, time.Microsecond, time.Second); err == nil {
		t.Fatalf("expected an error")
	}
}
