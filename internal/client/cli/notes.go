package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

var errUsage = errors.New("usage")

// AddNote reads a multi-line entry and submits it. After a failed save the
// unsaved text is kept, and an empty entry submits it again.
func (a *App) AddNote(ctx context.Context) error {
	prompt := "Write your entry"
	draft := a.controller.View().Draft
	if strings.TrimSpace(draft) != "" {
		printlnFn("Unsaved entry:\n" + draft)
		prompt = "Write your entry (empty to resubmit the unsaved one)"
	}

	text, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" && strings.TrimSpace(draft) != "" {
		text = draft
	} else if strings.TrimSpace(text) != "" {
		a.controller.SetDraft(text)
	}

	if err := a.controller.CreateEntry(ctx, text); err != nil {
		return err
	}
	printlnFn("Entry saved.")
	return a.List(ctx)
}

// DeleteNote deletes the entry with the id given as the first argument.
func (a *App) DeleteNote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: delete <id>", errUsage)
	}

	if err := a.controller.DeleteEntry(ctx, id); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Entry #%d deleted.", id))
	return nil
}

// List prints the entries matching the current filter.
func (a *App) List(_ context.Context) error {
	v := a.controller.View()
	printlnFn(renderList(v, a.now()))
	return nil
}

// Refresh refetches the entries from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.controller.Refresh(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}

// SelectYear sets the year filter: a number or "all".
func (a *App) SelectYear(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: year <yyyy|all>", errUsage)
	}
	year, err := parseSelector(args[0])
	if err != nil || (year != models.All && year < 1) {
		return fmt.Errorf("%w: year <yyyy|all>", errUsage)
	}
	a.controller.SetYear(year)
	printlnFn("Showing " + selectionLabel(a.controller.View()) + ".")
	return nil
}

// SelectMonth sets the month filter: 1-12 or "all". A year must be chosen first.
func (a *App) SelectMonth(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: month <1-12|all>", errUsage)
	}
	month, err := parseSelector(args[0])
	if err != nil {
		return fmt.Errorf("%w: month <1-12|all>", errUsage)
	}
	if month != models.All {
		month--
	}

	if !a.controller.View().MonthEnabled {
		return errors.New("select a year first")
	}
	if !a.controller.SetMonth(month) {
		return fmt.Errorf("%w: month <1-12|all>", errUsage)
	}
	printlnFn("Showing " + selectionLabel(a.controller.View()) + ".")
	return nil
}

// Years prints the years that have entries, newest first.
func (a *App) Years(_ context.Context) error {
	years := a.controller.View().Years
	if len(years) == 0 {
		printlnFn("No entries yet.")
		return nil
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	printlnFn(strings.Join(parts, ", "))
	return nil
}

func parseSelector(s string) (int, error) {
	if strings.EqualFold(s, "all") {
		return models.All, nil
	}
	return strconv.Atoi(s)
}
