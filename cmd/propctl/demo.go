package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bindprop/internal/logging"
	"bindprop/internal/person"
	"bindprop/internal/prop"
)

var (
	demoName  string
	demoCity  string
	demoRoute string
	demoAge   int
)

func init() {
	demoCmd.Flags().StringVar(&demoName, "name", "Ada", "name written through the by-reference accessor")
	demoCmd.Flags().StringVar(&demoCity, "city", "London", "city the alias accessor points at")
	demoCmd.Flags().StringVar(&demoRoute, "route", "0 0 3 4 3 8", "route coordinates as \"x0 y0 x1 y1 ...\"")
	demoCmd.Flags().IntVar(&demoAge, "age", 36, "initial age of the stored accessor")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a sample owner through every accessor strategy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), demoName, demoCity, demoRoute, demoAge)
	},
}

// runDemo builds a mentor and a student, mutates them through each kind of
// accessor and prints the result.
func runDemo(out io.Writer, name, city, route string, age int) error {
	home := city
	mentor := person.New(1, &home)
	mentor.Name.Set(name)
	mentor.Age.Chain(age).Adopt("that brain of mine is something more than merely mortal")
	mentor.Email.Set(name + "@Example.org")
	mentor.Heading.Set(-90)
	mentor.SetRouteText(route)

	secret := "correct horse"
	mentor.Password.SetMove(&secret)
	logging.Debugf("demo: password moved, source now %q", secret)

	student := person.New(2, &home).SetMentor(mentor)
	student.Name.Set("Grace")
	student.Nickname.Set("Amazing Grace")
	prop.AddAssign[int](&student.Age, mentor.Age.Get()/2)
	mentor.ShareRoute(student)

	if _, err := fmt.Fprintln(out, prop.Prepend("Hello, ", &mentor.Name)); err != nil {
		return err
	}
	for _, p := range []*person.Person{mentor, student} {
		if _, err := fmt.Fprintf(out, "\n[%s]\n", prop.Format[string](&p.Nickname)); err != nil {
			return err
		}
		if err := p.Describe(out); err != nil {
			return err
		}
	}

	// Moving the city is visible through both aliases.
	home = "Cambridge"
	_, err := fmt.Fprintf(out, "\nafter the move: %s and %s, adult: %v/%v\n",
		prop.Format[string](&mentor.City), prop.Format[string](&student.City),
		mentor.Adult(), student.Adult())
	return err
}
