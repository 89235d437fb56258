// Package person is the sample enclosing object used by propctl and the
// invariant suites. Every accessor strategy of package prop appears on it
// at least once.
package person

import (
	"crypto/subtle"
	"strings"

	"bindprop/internal/logging"
	"bindprop/internal/mathx"
	"bindprop/internal/optional"
	"bindprop/internal/prop"
	"bindprop/internal/strutil"
)

// Adults is the inclusive age range Adult checks against.
var Adults = mathx.Range[int]{Minimum: 18, Maximum: 150}

// Point is one waypoint of a Route.
type Point struct {
	X, Y float64
}

// Person must be created with New and must not be copied afterwards: its
// accessors hold a pointer to the instance they were bound to.
type Person struct {
	id       int
	name     string
	nickname string
	email    string
	motto    string
	password string
	heading  int
	mentor   *Person

	Name     prop.Ref[string, Person]
	Nickname prop.Value[string, Person]
	ID       prop.ValueReader[int, Person]
	Email    prop.ValueWriter[string, Person]
	Motto    prop.RefReader[string, Person]
	Password prop.RefWriter[string, Person]
	Heading  prop.Value[int, Person]
	Age      prop.Stored[int, Person]
	Route    prop.Shared[[]Point, Person]
	City     prop.PointerAlias[string]
}

// New returns a bound Person. city is aliased, not copied; it may be nil
// and supplied later through City.Initialize.
func New(id int, city *string) *Person {
	p := &Person{id: id}
	p.Name = prop.NewRef((*Person).nameRef, (*Person).assignName)
	p.Nickname = prop.NewValue((*Person).nick, (*Person).setNick)
	p.ID = prop.NewValueReader((*Person).identifier)
	p.Email = prop.NewValueWriter((*Person).storeEmail)
	p.Motto = prop.NewRefReader((*Person).mottoRef)
	p.Password = prop.NewRefWriter((*Person).assignPassword)
	p.Heading = prop.NewValue((*Person).bearing, (*Person).turnTo)
	p.Age = prop.NewStored[int, Person](0)
	p.Route = prop.NewShared[[]Point, Person](nil)
	p.City = prop.NewPointerAlias(city)

	prop.BindAll(p,
		&p.Name, &p.Nickname, &p.ID, &p.Email, &p.Motto,
		&p.Password, &p.Heading, &p.Age, &p.Route,
	)
	logging.Tracef("person %d: accessors bound", id)
	return p
}

func (p *Person) nameRef() *string { return &p.name }

func (p *Person) assignName(a prop.Assignment[string]) {
	a.To(&p.name)
	logging.Debugf("person %d: name set to %q", p.id, p.name)
}

// The nickname falls back to the name while unset.
func (p *Person) nick() string {
	if p.nickname == "" {
		return p.name
	}
	return p.nickname
}

func (p *Person) setNick(v string) { p.nickname = strings.TrimSpace(v) }

func (p *Person) identifier() int { return p.id }

func (p *Person) storeEmail(v string) {
	p.email = strings.ToLower(strutil.Normalize(strings.TrimSpace(v)))
}

// EmailAddress returns the normalised address last written through Email.
func (p *Person) EmailAddress() string { return p.email }

func (p *Person) mottoRef() *string { return &p.motto }

// Adopt replaces the motto exposed through Motto.
func (p *Person) Adopt(motto string) { p.motto = motto }

func (p *Person) assignPassword(a prop.Assignment[string]) {
	a.To(&p.password)
}

// CheckPassword compares candidate with the password last written through
// Password.
func (p *Person) CheckPassword(candidate string) bool {
	if p.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(p.password), []byte(candidate)) == 1
}

func (p *Person) bearing() int { return p.heading }

// Headings wrap into [0, 359].
func (p *Person) turnTo(deg int) { p.heading = mathx.Project(deg, 0, 359) }

// Adult reports whether Age lies in Adults.
func (p *Person) Adult() bool { return Adults.Contains(p.Age.Get(), true) }

// Mentor returns the mentor, if one was set.
func (p *Person) Mentor() optional.Ref[Person] { return optional.Of(p.mentor) }

// SetMentor records m (nil clears it) and returns p for chaining.
func (p *Person) SetMentor(m *Person) *Person {
	p.mentor = m
	return p
}
