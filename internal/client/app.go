// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-quran-keeper/internal/logger"
	"github.com/MKhiriev/go-quran-keeper/internal/service"
	"github.com/MKhiriev/go-quran-keeper/internal/workers"
)

type command struct {
	// needsServer commands probe the bookmark server before they run.
	needsServer bool
	run         func(a *App, ctx context.Context, args []string) error
}

var usages = map[string]string{
	"add":    "add -surah N -ayah N [-note s] [-tags a,b] [-color #RRGGBB] [-collection id]",
	"update": "update <id> [-note s] [-tags a,b] [-color #RRGGBB] [-collection id] [-text s]",
	"remove": "remove <id>",
	"show":   "show <id>",
	"list":   "list [-json]",
	"sync":   "sync",
	"watch":  "watch",
	"prayer": "prayer [-city s -country s [-method N]] [-zone CODE] [-date DD-MM-YYYY]",
	"hadith": "hadith -book s -number s",
	"verse":  "verse -surah N [-ayah N]",
}

var commands = map[string]command{
	"add":    {needsServer: true, run: (*App).add},
	"update": {needsServer: true, run: (*App).update},
	"remove": {needsServer: true, run: (*App).remove},
	"show":   {run: (*App).show},
	"list":   {needsServer: true, run: (*App).list},
	"sync":   {needsServer: true, run: (*App).sync},
	"watch":  {run: (*App).watch},
	"prayer": {run: (*App).prayer},
	"hadith": {run: (*App).hadith},
	"verse":  {run: (*App).verse},
}

type App struct {
	services *service.ClientServices
	workers  *workers.Workers

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, workers *workers.Workers, out, errOut io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		workers:  workers,
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	ctx = a.logger.With().Str("command", args[0]).Logger().WithContext(ctx)

	if cmd.needsServer {
		online := a.services.Monitor.Probe(ctx)
		logger.FromContext(ctx).Debug().Bool("online", online).Msg("bookmark server probed")
		if !online {
			fmt.Fprintln(a.errOut, "offline: changes are kept locally and synced later")
		}
	}

	return cmd.run(a, ctx, args[1:])
}

func (a *App) usage() {
	names := make([]string, 0, len(usages))
	for name := range usages {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: quran-keeper [flags] <command> [args]")
	fmt.Fprintln(a.errOut, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %s\n", usages[name])
	}
}
