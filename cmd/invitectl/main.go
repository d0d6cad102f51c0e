package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/stpnv0/ResortDesk/internal/app"
	"github.com/stpnv0/ResortDesk/internal/config"
	"github.com/urfave/cli/v2"
	"github.com/wb-go/wbf/logger"
)

type inviteRunner interface {
	Generate(ctx context.Context, reservationID string) (string, error)
	Render(ctx context.Context, reservationID string) ([]byte, error)
	Close() error
}

// openFunc connects the invite pipeline. It is called once per command.
type openFunc func() (inviteRunner, logger.Logger, error)

func main() {
	_ = godotenv.Load()

	if err := newApp(openInvites).Run(os.Args); err != nil {
		log.Fatalf("invitectl: %v", err)
	}
}

func openInvites() (inviteRunner, logger.Logger, error) {
	invites, err := app.OpenInvites(config.MustLoad())
	if err != nil {
		return nil, nil, err
	}
	return invites, invites.Log, nil
}

func newApp(open openFunc) *cli.App {
	return &cli.App{
		Name:  "invitectl",
		Usage: "Generate calendar invites for stored reservations.",
		Commands: []*cli.Command{
			generateCommand(open),
			renderCommand(open),
		},
	}
}

var idFlag = &cli.StringFlag{
	Name:     "id",
	Usage:    "reservation id",
	Required: true,
}

func generateCommand(open openFunc) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write the .ics file for a reservation and print its name.",
		Flags: []cli.Flag{idFlag},
		Action: func(c *cli.Context) error {
			invites, lg, err := open()
			if err != nil {
				return err
			}
			defer invites.Close()

			name, err := invites.Generate(c.Context, c.String("id"))
			if err != nil {
				lg.Error("invite generation failed",
					logger.String("reservation_id", c.String("id")),
					logger.String("error", err.Error()),
				)
				return fmt.Errorf("generate: %w", err)
			}

			fmt.Fprintln(c.App.Writer, name)
			return nil
		},
	}
}

func renderCommand(open openFunc) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Print the iCalendar text for a reservation without saving it.",
		Flags: []cli.Flag{idFlag},
		Action: func(c *cli.Context) error {
			invites, _, err := open()
			if err != nil {
				return err
			}
			defer invites.Close()

			data, err := invites.Render(c.Context, c.String("id"))
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			_, err = c.App.Writer.Write(data)
			return err
		},
	}
}
