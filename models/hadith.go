// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HadithQuery identifies a hadith within a collection.
type HadithQuery struct {
	Book   string
	Number string
}

// Hadith is a single narration.
type Hadith struct {
	Book        string `json:"book"`
	Number      string `json:"number"`
	Chapter     string `json:"chapter,omitempty"`
	Narrator    string `json:"narrator,omitempty"`
	TextEnglish string `json:"text_english"`
	TextArabic  string `json:"text_arabic"`
	Grade       string `json:"grade,omitempty"`
}
