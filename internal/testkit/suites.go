package testkit

import (
	"fmt"
	"path"

	"bindprop/internal/person"
	"bindprop/internal/prop"
)

// Suite is one named invariant check over freshly built accessors.
type Suite struct {
	Name string
	Run  func() error
}

// Suites returns every invariant suite in a stable order. Each Run builds
// its own owners, so suites may run concurrently.
func Suites() []Suite {
	return []Suite{
		{"round-trip/stored", func() error {
			return CheckRoundTrip[int](&person.New(1, nil).Age, 0, 17, -3)
		}},
		{"round-trip/shared", func() error {
			a, b := []person.Point{{X: 1}}, []person.Point{}
			return CheckRoundTrip[*[]person.Point](&person.New(1, nil).Route, &a, &b, nil)
		}},
		{"round-trip/reference", func() error {
			return CheckRoundTrip[string](&person.New(1, nil).Name, "Ada", "", "Grace")
		}},
		{"round-trip/value", func() error {
			return CheckRoundTrip[string](&person.New(1, nil).Nickname, "Peggy", "Amazing Grace")
		}},
		{"add-law/stored", func() error {
			return CheckAddLaw[int](&person.New(1, nil).Age, 30, 1, -31, 0)
		}},
		{"add-law/value", func() error {
			return CheckAddLaw[int](&person.New(1, nil).Heading, 350, 5, 400, -720)
		}},
		{"add-law/reference", func() error {
			return CheckAddLaw[string](&person.New(1, nil).Name, "Ada", " Lovelace", "")
		}},
		{"double-bind/same-owner", func() error {
			p := person.New(1, nil)
			return checkAllBinders(p, p)
		}},
		{"double-bind/other-owner", func() error {
			return checkAllBinders(person.New(1, nil), person.New(2, nil))
		}},
		{"unbound-read/value", func() error {
			r := prop.NewValueReader(func(p *person.Person) int { return p.ID.Get() })
			return CheckUnboundRead[int](&r)
		}},
		{"unbound-read/reference", func() error {
			r := prop.NewRef(
				func(p *person.Person) *string { return p.Name.Ref() },
				func(p *person.Person, a prop.Assignment[string]) { p.Name.Set(a.Peek()) },
			)
			return CheckUnboundRead[string](&r)
		}},
		{"alias/independence", func() error {
			x, y := "London", "Paris"
			a, b := prop.NewPointerAlias(&x), prop.NewPointerAlias(&y)
			return CheckAliasIndependence(&a, &b, &x, &y, "Rome")
		}},
		{"erasure/text", func() error {
			x := "x"
			p := person.New(1, &x)
			p.Name.Set("x")
			p.Adopt("x")
			stored := prop.NewStored[string, person.Person]("x")
			byValue := prop.NewValueReader(func(*person.Person) string { return "x" })
			prop.BindAll(p, &stored, &byValue)
			return CheckErasure[string](&stored, &byValue, &p.Name, &p.Motto, &p.City)
		}},
		{"scenario/name", func() error {
			p := person.New(1, nil)
			p.Name.Set("Ada")
			if got := p.Name.Get(); got != "Ada" {
				return mismatch("name", got, "Ada")
			}
			if got := prop.Prepend("Hello, ", &p.Name); got != "Hello, Ada" {
				return mismatch("greeting", got, "Hello, Ada")
			}
			return nil
		}},
	}
}

// Select returns the suites whose name matches any of the path.Match
// patterns; no patterns selects everything.
func Select(all []Suite, patterns []string) ([]Suite, error) {
	if len(patterns) == 0 {
		return all, nil
	}
	var out []Suite
	for _, s := range all {
		for _, pat := range patterns {
			ok, err := path.Match(pat, s.Name)
			if err != nil {
				return nil, fmt.Errorf("suite pattern %q: %w", pat, err)
			}
			if ok {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func checkAllBinders(p, again *person.Person) error {
	binders := []struct {
		name string
		b    prop.Binder[person.Person]
	}{
		{"Name", &p.Name},
		{"Nickname", &p.Nickname},
		{"ID", &p.ID},
		{"Email", &p.Email},
		{"Motto", &p.Motto},
		{"Password", &p.Password},
		{"Heading", &p.Heading},
		{"Age", &p.Age},
		{"Route", &p.Route},
	}
	for _, b := range binders {
		if err := CheckDoubleBind(b.b, again); err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
	}
	return nil
}
