// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Verse is an ayah in Arabic together with one translation.
type Verse struct {
	Surah           int    `json:"surah"`
	SurahName       string `json:"surah_name"`
	SurahNameArabic string `json:"surah_name_arabic"`
	Ayah            int    `json:"ayah"`
	TextArabic      string `json:"text_arabic"`
	Translation     string `json:"translation"`
}

// Surah is a complete chapter.
type Surah struct {
	Number     int     `json:"number"`
	Name       string  `json:"name"`
	NameArabic string  `json:"name_arabic"`
	Verses     []Verse `json:"verses"`
}
