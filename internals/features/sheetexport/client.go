package sheetexport

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"codekar_backend/internals/features/registration/model"
)

const SheetRegistrations = "Registrations"

// Client mirrors finalized registrations into the organizers' spreadsheet.
type Client struct {
	srv           *sheetsv4.Service
	spreadsheetID string
}

func New(ctx context.Context, serviceAccountJSONPath, spreadsheetID string) (*Client, error) {
	if _, err := os.Stat(serviceAccountJSONPath); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(serviceAccountJSONPath),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) SpreadsheetID() string { return c.spreadsheetID }

// AppendRegistration appends one row. Column order matches the sheet header
// the organizers set up: submitted at, type, team, track, title, amount,
// transaction id, members JSON.
func (c *Client) AppendRegistration(ctx context.Context, r *model.Registration) error {
	row := []interface{}{
		r.SubmittedAt.Format("2006-01-02 15:04:05"),
		r.RegistrationType,
		r.TeamName,
		r.ProjectTrack,
		r.ProjectTitle,
		r.Amount,
		r.TransactionID,
		string(r.Members),
	}
	vr := &sheetsv4.ValueRange{Values: [][]interface{}{row}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, SheetRegistrations+"!A:Z", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
