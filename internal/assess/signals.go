// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package assess

import "regexp"

// Signal pairs a detection regex with the human-readable label reported in
// notes. NotFollowedBy, when set, suppresses a match whose trailing text
// starts with that pattern (RE2 has no lookahead, so the exclusion is applied
// per occurrence after matching).
type Signal struct {
	ID            string
	Label         string
	Pattern       *regexp.Regexp
	NotFollowedBy *regexp.Regexp
}

// Matches reports whether the line contains at least one occurrence of the
// signal, honoring the NotFollowedBy exclusion per occurrence.
func (s Signal) Matches(line string) bool {
	if s.NotFollowedBy == nil {
		return s.Pattern.MatchString(line)
	}
	for _, loc := range s.Pattern.FindAllStringIndex(line, -1) {
		rest := line[loc[1]:]
		if !s.NotFollowedBy.MatchString(rest) {
			return true
		}
	}
	return false
}

// Config is the immutable signal configuration the classifier runs with.
// Local signals are matched against removed lines, vendor signals against
// added lines, and upgrade signals against both sides.
type Config struct {
	Local   []Signal
	Vendor  []Signal
	Upgrade []Signal
}

// DefaultConfig returns the built-in signal families tuned for the Aeon web
// directory at Brown: institution-specific terms whose removal suggests a
// prior local customization, known upstream Aeon feature markers, and
// generic upgrade-structural markers.
func DefaultConfig() Config {
	return Config{
		Local: []Signal{
			{ID: "brown", Label: "Brown", Pattern: regexp.MustCompile(`(?i)\bBrown\b`)},
			{ID: "bruknow", Label: "BruKnow", Pattern: regexp.MustCompile(`(?i)BruKnow`)},
			{ID: "john-hay", Label: "John Hay", Pattern: regexp.MustCompile(`(?i)John\s*Hay`)},
			{ID: "jhl", Label: "JHL", Pattern: regexp.MustCompile(`(?i)\bJHL\b`)},
			{ID: "annex-hay", Label: "Annex Hay", Pattern: regexp.MustCompile(`(?i)Annex Hay`)},
			{ID: "bdr", Label: "Brown Digital Repository", Pattern: regexp.MustCompile(`(?i)Brown Digital Repository`)},
			{ID: "library-domain", Label: "library.brown.edu", Pattern: regexp.MustCompile(`(?i)library\.brown\.edu`)},
			{ID: "search-domain", Label: "search.library.brown.edu", Pattern: regexp.MustCompile(`(?i)search\.library\.brown\.edu`)},
			{
				ID:            "hay",
				Label:         "Hay",
				Pattern:       regexp.MustCompile(`(?i)\bHay\b`),
				NotFollowedBy: regexp.MustCompile(`(?i)^\s*Street`),
			},
		},
		Vendor: []Signal{
			{ID: "aeon", Label: "Aeon", Pattern: regexp.MustCompile(`(?i)\bAeon\b`)},
			{ID: "transaction-label", Label: "transaction-label", Pattern: regexp.MustCompile(`(?i)transaction-label`)},
			{ID: "scheduled-date-include", Label: "include_scheduled_date.html", Pattern: regexp.MustCompile(`(?i)include_scheduled_date(_ead)?\.html`)},
			{ID: "eadrequest-min", Label: "EADRequest.min.js", Pattern: regexp.MustCompile(`(?i)EADRequest\.min\.js`)},
			{ID: "freqdec-datepicker", Label: "Freqdec Datepicker", Pattern: regexp.MustCompile(`(?i)Freqdec Datepicker`)},
			{ID: "researcher-tags-include", Label: "include_ResearcherTags.html", Pattern: regexp.MustCompile(`(?i)include_ResearcherTags\.html`)},
			{ID: "convert-local", Label: "convert-local", Pattern: regexp.MustCompile(`(?i)convert-local`)},
			{ID: "request-links", Label: "RequestLinks", Pattern: regexp.MustCompile(`(?i)\bRequestLinks\b`)},
			{ID: "hide-usernames", Label: "hideUsernames", Pattern: regexp.MustCompile(`(?i)hideUsernames`)},
			{ID: "custom-select", Label: "custom-select", Pattern: regexp.MustCompile(`(?i)custom-select`)},
			{ID: "request-buttons-include", Label: "include_request_buttons.html", Pattern: regexp.MustCompile(`(?i)include_request_buttons\.html`)},
		},
		Upgrade: []Signal{
			{ID: "hidden-username", Label: "hidden Username input", Pattern: regexp.MustCompile(`(?i)<input[^>]+type="hidden"[^>]+name="Username"`)},
			{ID: "datepicker", Label: "Datepicker", Pattern: regexp.MustCompile(`(?i)\bDatepicker\b`)},
			{ID: "iso8601", Label: "ISO8601", Pattern: regexp.MustCompile(`(?i)\bISO8601\b`)},
		},
	}
}

// findMatches collects, in line-major then signal order, every signal that
// hits each line. A signal contributes at most one hit per line, so the hit
// count is the number of (line, signal) matching pairs.
func findMatches(lines []string, signals []Signal) []Signal {
	var hits []Signal
	for _, line := range lines {
		for _, s := range signals {
			if s.Matches(line) {
				hits = append(hits, s)
			}
		}
	}
	return hits
}
