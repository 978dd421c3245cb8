// Package console implements the interactive operator menu.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/starford/zoodesk/internal/catalog"
	"github.com/starford/zoodesk/internal/models"
)

const (
	optionAnimals  = "a"
	optionHabitats = "h"
	optionQuit     = "q"
	optionBack     = "back"
)

var mainOptions = []string{
	`To monitor animals: Enter "a".`,
	`To monitor habitats: Enter "h".`,
	`To exit the zoo monitoring system: Enter "q".`,
}

// Menu reads whitespace-delimited commands from the operator and prints
// catalog listings and detail views.
type Menu struct {
	svc *catalog.Service
	in  *bufio.Scanner
	out io.Writer
}

// NewMenu creates a Menu reading from in and writing to out.
func NewMenu(svc *catalog.Service, in io.Reader, out io.Writer) *Menu {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Menu{svc: svc, in: sc, out: out}
}

// Run loops over the main menu until the operator quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		m.printMenu("Main Menu", mainOptions)

		option, ok := m.next()
		if !ok {
			return m.in.Err()
		}
		switch option {
		case optionAnimals:
			if err := m.submenu(ctx, models.Animals); err != nil {
				return err
			}
		case optionHabitats:
			if err := m.submenu(ctx, models.Habitats); err != nil {
				return err
			}
		case optionQuit:
			fmt.Fprintln(m.out, "Exiting zoo monitoring system.")
			return nil
		default:
			fmt.Fprintln(m.out, "Menu option not recognized.")
		}
	}
}

// submenu lists category's records and shows details for each name entered
// until "back".
func (m *Menu) submenu(ctx context.Context, category models.Category) error {
	if _, err := m.svc.Listing(ctx, m.out, category); err != nil {
		return err
	}
	fmt.Fprintln(m.out, `Enter "back" to return to the main menu.`)
	fmt.Fprintln(m.out)

	for {
		option, ok := m.next()
		if !ok {
			return m.in.Err()
		}
		if option == optionBack {
			return nil
		}
		if _, err := m.svc.Render(ctx, m.out, category, option); err != nil {
			return err
		}
	}
}

func (m *Menu) next() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.ToLower(m.in.Text()), true
}

func (m *Menu) printMenu(title string, options []string) {
	fmt.Fprintln(m.out, "     "+title)
	fmt.Fprintln(m.out, "----------------------")
	for _, o := range options {
		fmt.Fprintln(m.out, o)
	}
	fmt.Fprintln(m.out)
}
