package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/skoerner/customers/internal/config"
	"github.com/skoerner/customers/internal/registry"
	"github.com/skoerner/customers/pkg/customer"
)

// CLI is the top-level command structure for customers.
type CLI struct {
	Parse  ParseCmd  `cmd:"" help:"Parse a free-text name into first and last name."`
	Roster RosterCmd `cmd:"" help:"Build a roster from free-text names and print it."`
}

// ParseCmd builds a single customer from a free-text name.
type ParseCmd struct {
	Name     string   `arg:"" help:"Free-text name, e.g. 'Schmidt, Maria'."`
	Contacts []string `help:"Contact to attach; may be repeated." short:"c" name:"contact"`
}

func (p *ParseCmd) Run(log *logrus.Logger) error {
	c, err := customer.NewFromName(p.Name)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	for _, contact := range p.Contacts {
		if _, err := c.AddContact(contact); err != nil {
			log.WithField("contact", contact).Warn("skipping contact without content")
		}
	}

	fmt.Printf("first name: %s\n", c.FirstName())
	fmt.Printf("last name:  %s\n", c.LastName())
	for i, contact := range c.Contacts() {
		fmt.Printf("contact %d:  %s\n", i, contact)
	}
	return nil
}

// RosterCmd registers several customers and prints them as a table.
type RosterCmd struct {
	Names []string `arg:"" help:"Free-text names, one customer each."`
}

func (r *RosterCmd) Run(log *logrus.Logger, cfg config.Config) error {
	roster := registry.New(cfg.FirstID)
	for _, name := range r.Names {
		c, err := customer.NewFromName(name)
		if err != nil {
			return fmt.Errorf("roster: name %q - %w", name, err)
		}
		roster.Add(c)
		log.WithFields(logrus.Fields{"id": c.ID(), "lastName": c.LastName()}).Debug("customer registered")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME")
	for _, c := range roster.All() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID(), c.FirstName(), c.LastName())
	}
	return w.Flush()
}

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build configuration - %s", err)
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("failed to parse log level - %s", err)
	}
	log.SetLevel(level)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("customers"),
		kong.Description("Build customer records from free-text names."),
		kong.Bind(log, cfg),
	)
	if err := ctx.Run(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}
