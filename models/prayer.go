// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PrayerTimesQuery selects the location a timetable is requested for.
// City/Country are used by Aladhan; Zone (e.g. "SGR01") by JAKIM e-Solat.
type PrayerTimesQuery struct {
	City    string
	Country string
	Method  int
	Zone    string
	// Date is formatted DD-MM-YYYY; empty means today.
	Date string
}

// PrayerTimes is a provider-neutral daily timetable. Times are local
// "HH:MM" strings as reported by the provider.
type PrayerTimes struct {
	Provider string `json:"provider"`
	Date     string `json:"date"`
	Fajr     string `json:"fajr"`
	Sunrise  string `json:"sunrise"`
	Dhuhr    string `json:"dhuhr"`
	Asr      string `json:"asr"`
	Maghrib  string `json:"maghrib"`
	Isha     string `json:"isha"`
}
