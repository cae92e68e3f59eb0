// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/backend"
	"eventhub/cli/internal/validate"
)

var eventForm struct {
	title       string
	description string
	date        string
	time        string
	location    string
	creatorName string
	attendees   int
}

var deleteYes bool

var eventsCreateCmd = protect(&cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		form := validate.EventForm{
			Title:       eventForm.title,
			Description: eventForm.description,
			Date:        eventForm.date,
			Time:        eventForm.time,
			Location:    eventForm.location,
			CreatorName: eventForm.creatorName,
		}
		if form.CreatorName == "" {
			form.CreatorName = a.session.CurrentIdentity().Name()
		}
		if err := printValidation(validate.Event(form)); err != nil {
			return err
		}

		res := withSpinner("Creating event", func() api.Result[backend.Response[backend.Event]] {
			return a.api.CreateEvent(cmd.Context(), backend.EventInput{
				Title:       form.Title,
				Description: form.Description,
				Date:        form.Date,
				Time:        form.Time,
				Location:    form.Location,
				CreatorName: form.CreatorName,
			})
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "creating the event")
		}
		pterm.Success.Printf("Event created: %s (%s)\n", res.Data.Data.Title, orDash(res.Data.Data.ID))
		return nil
	},
})

var eventsUpdateCmd = protect(&cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of an event you created",
	Long:  `Only the flags you pass are sent; other fields keep their current values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		patch := eventPatch(cmd)
		if patch.Empty() {
			return errors.New("nothing to update: pass at least one field flag")
		}
		res := withSpinner("Updating event", func() api.Result[backend.Response[backend.Event]] {
			return a.api.UpdateEvent(cmd.Context(), args[0], patch)
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "updating the event")
		}
		pterm.Success.Println("Event updated.")
		return renderEvent(res.Data.Data)
	},
})

var eventsDeleteCmd = protect(&cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an event you created",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		if !deleteYes && !confirm("Delete event "+args[0]+"? This cannot be undone.") {
			pterm.Info.Println("Nothing deleted. Pass --yes to skip the confirmation.")
			return nil
		}
		res := withSpinner("Deleting event", func() api.Result[backend.Response[backend.Event]] {
			return a.api.DeleteEvent(cmd.Context(), args[0])
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "deleting the event")
		}
		pterm.Success.Println("Event deleted.")
		return nil
	},
})

var eventsJoinCmd = protect(&cobra.Command{
	Use:   "join <id>",
	Short: "Join an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		res := withSpinner("Joining event", func() api.Result[backend.Response[backend.Event]] {
			return a.api.JoinEvent(cmd.Context(), args[0])
		})
		if !res.IsOK() {
			return a.presentFailure(res.Err, "joining the event")
		}
		msg := res.Data.Message
		if msg == "" {
			msg = "You joined the event."
		}
		pterm.Success.Println(msg)
		return nil
	},
})

// eventPatch collects only the flags the user actually set.
func eventPatch(cmd *cobra.Command) backend.EventPatch {
	var p backend.EventPatch
	changed := cmd.Flags().Changed
	str := func(flag, v string) *string {
		if !changed(flag) {
			return nil
		}
		return &v
	}
	p.Title = str("title", eventForm.title)
	p.Description = str("description", eventForm.description)
	p.Date = str("date", eventForm.date)
	p.Time = str("time", eventForm.time)
	p.Location = str("location", eventForm.location)
	p.CreatorName = str("creator", eventForm.creatorName)
	if changed("attendees") {
		n := eventForm.attendees
		p.AttendeeCount = &n
	}
	return p
}

func init() {
	for _, c := range []*cobra.Command{eventsCreateCmd, eventsUpdateCmd} {
		f := c.Flags()
		f.StringVar(&eventForm.title, "title", "", "Event title")
		f.StringVar(&eventForm.description, "description", "", "Event description")
		f.StringVar(&eventForm.date, "date", "", "Date (YYYY-MM-DD)")
		f.StringVar(&eventForm.time, "time", "", "Time (HH:MM)")
		f.StringVar(&eventForm.location, "location", "", "Location")
		f.StringVar(&eventForm.creatorName, "creator", "", "Host name shown on the event (defaults to your name)")
	}
	eventsUpdateCmd.Flags().IntVar(&eventForm.attendees, "attendees", 0, "Attendee count")
	eventsDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")

	eventsCmd.AddCommand(eventsCreateCmd, eventsUpdateCmd, eventsDeleteCmd, eventsJoinCmd)
}
