// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/models"
)

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() { fmt.Fprintf(a.errOut, "usage: %s\n", usages[name]) }
	return fs
}

// parse runs fs over args and maps flag errors to ErrUsage.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// idArg parses flags that may follow a leading bookmark id.
func (a *App) idArg(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		fs.Usage()
		return "", fmt.Errorf("%w: bookmark id is required", ErrUsage)
	}
	if err := parse(fs, args[1:]); err != nil {
		return "", err
	}
	return args[0], nil
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	surah := fs.Int("surah", 0, "surah number (1-114)")
	ayah := fs.Int("ayah", 0, "ayah number")
	note := fs.String("note", "", "personal note")
	tags := fs.String("tags", "", "comma separated tags")
	color := fs.String("color", "", "highlight colour #RRGGBB")
	collection := fs.String("collection", "", "collection id")
	if err := parse(fs, args); err != nil {
		return err
	}

	input := models.BookmarkInput{Surah: *surah, Ayah: *ayah}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "note":
			input.Note = note
		case "tags":
			input.Tags = splitTags(*tags)
		case "color":
			input.Color = color
		case "collection":
			input.CollectionID = collection
		}
	})

	// the bookmark is saved without text when the verse cannot be loaded
	if err := a.services.Verses.FillBookmarkInput(ctx, &input); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "App.add").Msg("verse text not loaded")
	}

	b, err := a.services.Bookmarks.Add(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "added %s (%d:%d) [%s]\n", b.ID, b.Surah, b.Ayah, b.SyncStatus)
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := a.newFlagSet("update")
	note := fs.String("note", "", "personal note")
	tags := fs.String("tags", "", "comma separated tags, empty clears them")
	color := fs.String("color", "", "highlight colour #RRGGBB")
	collection := fs.String("collection", "", "collection id")
	text := fs.String("text", "", "ayah text")
	id, err := a.idArg(fs, args)
	if err != nil {
		return err
	}

	var changes models.BookmarkChanges
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "note":
			changes.Note = note
		case "tags":
			t := splitTags(*tags)
			changes.Tags = &t
		case "color":
			changes.Color = color
		case "collection":
			changes.CollectionID = collection
		case "text":
			changes.AyahText = text
		}
	})

	b, err := a.services.Bookmarks.Update(ctx, id, changes)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated %s [%s]\n", b.ID, b.SyncStatus)
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	fs := a.newFlagSet("remove")
	id, err := a.idArg(fs, args)
	if err != nil {
		return err
	}

	if err = a.services.Bookmarks.Remove(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "removed %s\n", id)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	fs := a.newFlagSet("show")
	id, err := a.idArg(fs, args)
	if err != nil {
		return err
	}

	b, err := a.services.Bookmarks.Get(ctx, id)
	if err != nil {
		return err
	}

	return writeJSON(a.out, b)
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := parse(fs, args); err != nil {
		return err
	}

	bookmarks, err := a.services.Bookmarks.List(ctx)
	if err != nil {
		return err
	}

	if *asJSON {
		if bookmarks == nil {
			bookmarks = []models.Bookmark{}
		}
		return writeJSON(a.out, bookmarks)
	}
	writeBookmarkTable(a.out, bookmarks)
	return nil
}

func (a *App) sync(ctx context.Context, _ []string) error {
	if !a.services.Bookmarks.Online() {
		return fmt.Errorf("sync: %w", ErrOffline)
	}

	if err := a.services.Bookmarks.Reconcile(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "bookmarks are in sync")
	return nil
}

func writeBookmarkTable(w io.Writer, bookmarks []models.Bookmark) {
	if len(bookmarks) == 0 {
		fmt.Fprintln(w, "no bookmarks")
		return
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tREF\tSURAH\tTAGS\tSTATUS\tUPDATED")
	for _, b := range bookmarks {
		fmt.Fprintf(tw, "%s\t%d:%d\t%s\t%s\t%s\t%s\n",
			b.ID, b.Surah, b.Ayah, b.SurahName, strings.Join(b.Tags, ","), b.SyncStatus,
			b.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
