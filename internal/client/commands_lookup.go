// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quran-keeper/models"
)

func (a *App) prayer(ctx context.Context, args []string) error {
	fs := a.newFlagSet("prayer")
	var q models.PrayerTimesQuery
	fs.StringVar(&q.City, "city", "", "city name (Aladhan)")
	fs.StringVar(&q.Country, "country", "", "country name (Aladhan)")
	fs.IntVar(&q.Method, "method", 2, "Aladhan calculation method")
	fs.StringVar(&q.Zone, "zone", "", "JAKIM zone code, e.g. WLY01")
	fs.StringVar(&q.Date, "date", "", "date DD-MM-YYYY, default today")
	if err := parse(fs, args); err != nil {
		return err
	}

	pt, err := a.services.PrayerTimes.PrayerTimes(ctx, q)
	if err != nil {
		return err
	}

	tw := newTabWriter(a.out)
	fmt.Fprintf(tw, "%s\t%s\n", pt.Date, pt.Provider)
	for _, row := range [][2]string{
		{"Fajr", pt.Fajr},
		{"Sunrise", pt.Sunrise},
		{"Dhuhr", pt.Dhuhr},
		{"Asr", pt.Asr},
		{"Maghrib", pt.Maghrib},
		{"Isha", pt.Isha},
	} {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func (a *App) hadith(ctx context.Context, args []string) error {
	fs := a.newFlagSet("hadith")
	var q models.HadithQuery
	fs.StringVar(&q.Book, "book", "", "book slug, e.g. sahih-bukhari")
	fs.StringVar(&q.Number, "number", "", "hadith number")
	if err := parse(fs, args); err != nil {
		return err
	}

	h, err := a.services.Hadith.Hadith(ctx, q)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s #%s", h.Book, h.Number)
	if h.Grade != "" {
		fmt.Fprintf(a.out, " (%s)", h.Grade)
	}
	fmt.Fprintln(a.out)
	if h.Narrator != "" {
		fmt.Fprintln(a.out, h.Narrator)
	}
	if h.TextArabic != "" {
		fmt.Fprintln(a.out, h.TextArabic)
	}
	fmt.Fprintln(a.out, h.TextEnglish)
	return nil
}

func (a *App) verse(ctx context.Context, args []string) error {
	fs := a.newFlagSet("verse")
	surah := fs.Int("surah", 0, "surah number (1-114)")
	ayah := fs.Int("ayah", 0, "ayah number; omit for the whole surah")
	if err := parse(fs, args); err != nil {
		return err
	}

	if *ayah == 0 {
		s, err := a.services.Verses.Surah(ctx, *surah)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%d. %s %s\n", s.Number, s.Name, s.NameArabic)
		for _, v := range s.Verses {
			writeVerse(a, v)
		}
		return nil
	}

	v, err := a.services.Verses.Ayah(ctx, *surah, *ayah)
	if err != nil {
		return err
	}
	writeVerse(a, v)
	return nil
}

func writeVerse(a *App, v models.Verse) {
	fmt.Fprintf(a.out, "[%d:%d] %s\n", v.Surah, v.Ayah, v.TextArabic)
	if v.Translation != "" {
		fmt.Fprintf(a.out, "        %s\n", v.Translation)
	}
}
