package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendrical/internal/api"
	"github.com/zapponejosh/calendrical/internal/calendar"
)

func (a *app) calendarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendars",
		Short: "List the calendars and the forms their arithmetic is built on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range catalog.All() {
				fmt.Fprintf(out, "%s (%s), epoch %d\n", s.ID(), s.Name(), s.Epoch())
				for _, nf := range s.Forms() {
					fmt.Fprintf(out, "  %-12s %v\n", nf.Name, nf.Form)
				}
			}
			return nil
		},
	}
}

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "date CALENDAR YYYY-MM-DD",
		Short:   "Describe a date: day number, weekday and month length",
		Example: "  calendrical date coptic 1716-04-22",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema(args[0])
			if err != nil {
				return err
			}
			d, err := calendar.ParseDate(s, args[1])
			if err != nil {
				return err
			}
			return a.printDate(cmd.OutOrStdout(), d)
		},
	}
}

func (a *app) dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "day CALENDAR DAY_NUMBER",
		Short:   "Print the date with the given day number",
		Example: "  calendrical day gregorian 730119",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("day number %q: %w", args[1], err)
			}
			d, err := calendar.FromDayNumber(s, n)
			if err != nil {
				return err
			}
			return a.printDate(cmd.OutOrStdout(), d)
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "convert CALENDAR YYYY-MM-DD --to CALENDAR",
		Short:   "Convert a date to another calendar",
		Example: "  calendrical convert gregorian 2000-01-01 --to tabular-islamic",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog()
			if err != nil {
				return err
			}
			from, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			target, err := catalog.Lookup(to)
			if err != nil {
				return err
			}

			d, err := calendar.ParseDate(from, args[1])
			if err != nil {
				return err
			}
			converted, err := d.ConvertTo(target)
			if err != nil {
				return err
			}
			return a.printDate(cmd.OutOrStdout(), converted)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target calendar")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) easterCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "easter CALENDAR YEAR",
		Short:   "Print Easter and the moveable feasts of a year",
		Example: "  calendrical easter julian 2025",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema(args[0])
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("year %q: %w", args[1], err)
			}
			f, err := calendar.Feasts(s, year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return writeJSON(out, map[string]api.DateResponse{
					"ash_wednesday": api.NewDateResponse(f.AshWednesday),
					"easter":        api.NewDateResponse(f.Easter),
					"ascension":     api.NewDateResponse(f.Ascension),
					"pentecost":     api.NewDateResponse(f.Pentecost),
					"advent":        api.NewDateResponse(f.Advent),
				})
			}
			for _, feast := range []struct {
				name string
				date calendar.Date
			}{
				{"Ash Wednesday", f.AshWednesday},
				{"Easter", f.Easter},
				{"Ascension", f.Ascension},
				{"Pentecost", f.Pentecost},
				{"Advent", f.Advent},
			} {
				fmt.Fprintf(out, "%-14s %s\n", feast.name, feast.date)
			}
			return nil
		},
	}
}

func (a *app) schema(id string) (calendar.Schema, error) {
	catalog, err := a.catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Lookup(id)
}

func (a *app) printDate(out io.Writer, d calendar.Date) error {
	resp := api.NewDateResponse(d)
	if a.jsonOutput {
		return writeJSON(out, resp)
	}
	leap := ""
	if resp.LeapYear {
		leap = ", leap year"
	}
	_, err := fmt.Fprintf(out, "%s %s, %s, day %d, %d days in month%s\n",
		resp.Calendar, resp.Date, resp.DayOfWeek, resp.DayNumber, resp.DaysInMonth, leap)
	return err
}
