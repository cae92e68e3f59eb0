// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/backend"
)

var eventsOpts struct {
	search    string
	date      string
	dateRange string
	json      bool
}

// eventsCmd groups the event subcommands.
var eventsCmd = &cobra.Command{
	Use:     "events",
	Aliases: []string{"event", "ev"},
	Short:   "Browse, create and join events",

	Annotations: map[string]string{annotationStandalone: "true"},
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	Long: `List events, optionally filtered by a search term, an exact date, or a
relative date range: today, current-week, last-week, current-month, last-month.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		q, err := eventQuery()
		if err != nil {
			return err
		}
		res := withSpinner("Loading events", func() api.Result[backend.Response[[]backend.Event]] {
			return a.api.ListEvents(cmd.Context(), q)
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "loading events")
		}
		return renderEvents(cmd, res)
	},
}

var eventsMineCmd = protect(&cobra.Command{
	Use:   "mine",
	Short: "List events you created",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		q, err := eventQuery()
		if err != nil {
			return err
		}
		res := withSpinner("Loading your events", func() api.Result[backend.Response[[]backend.Event]] {
			return a.api.MyEvents(cmd.Context(), q)
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "loading your events")
		}
		return renderEvents(cmd, res)
	},
})

var eventsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		res := withSpinner("Loading event", func() api.Result[backend.Response[backend.Event]] {
			return a.api.GetEvent(cmd.Context(), args[0])
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "loading the event")
		}
		if eventsOpts.json {
			return printJSON(cmd, res.Data.Data)
		}
		return renderEvent(res.Data.Data)
	},
}

func eventQuery() (backend.EventQuery, error) {
	r, err := backend.ParseDateRange(eventsOpts.dateRange)
	if err != nil {
		return backend.EventQuery{}, err
	}
	return backend.EventQuery{
		SearchTerm: eventsOpts.search,
		Date:       eventsOpts.date,
		DateRange:  r,
	}, nil
}

func renderEvents(cmd *cobra.Command, res api.Result[backend.Response[[]backend.Event]]) error {
	events := res.Data.Data
	if eventsOpts.json {
		return printJSON(cmd, events)
	}
	if len(events) == 0 {
		pterm.Info.Println("No events found.")
		return nil
	}
	data := pterm.TableData{{"ID", "Title", "Date", "Time", "Location", "Attendees"}}
	for _, e := range events {
		data = append(data, []string{
			e.ID, e.Title, orDash(e.Date), orDash(e.Time), orDash(e.Location), strconv.Itoa(e.AttendeeCount),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	if m := res.Meta; m != nil {
		pterm.Printf("Page %d · %d per page · %d total\n", m.Page, m.Limit, m.Total)
	}
	return nil
}

func renderEvent(e backend.Event) error {
	joined := "no"
	if e.IsJoined {
		joined = "yes"
	}
	return pterm.DefaultTable.WithData(pterm.TableData{
		{"ID", e.ID},
		{"Title", e.Title},
		{"Description", orDash(e.Description)},
		{"When", fmt.Sprintf("%s %s", orDash(e.Date), e.Time)},
		{"Location", orDash(e.Location)},
		{"Host", orDash(e.CreatorName)},
		{"Attendees", strconv.Itoa(e.AttendeeCount)},
		{"Joined", joined},
	}).Render()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.PersistentFlags().BoolVar(&eventsOpts.json, "json", false, "Print raw JSON instead of a table")

	for _, c := range []*cobra.Command{eventsListCmd, eventsMineCmd} {
		c.Flags().StringVarP(&eventsOpts.search, "search", "s", "", "Search term")
		c.Flags().StringVar(&eventsOpts.date, "date", "", "Exact date (YYYY-MM-DD)")
		c.Flags().StringVar(&eventsOpts.dateRange, "range", "", "Relative range: today, current-week, last-week, current-month, last-month")
	}
	eventsCmd.AddCommand(eventsListCmd, eventsMineCmd, eventsGetCmd)
}
