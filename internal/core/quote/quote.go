// Package quote holds the rotating motivational quotes shown on the
// status screen. Selection is a pure function of the clock so every
// invocation within the same window shows the same quote.
package quote

import "time"

// Quotes is the built-in rotation. Tone is deliberately unsympathetic.
var Quotes = []string{
	"Another day, another stamp closer to the exit.",
	"Your loyalty card is the only loyalty that pays out here.",
	"They can't fire you if you quit first.",
	"HR says you're family. Family doesn't need a loyalty card.",
	"Every meeting that could've been an email is a stamp.",
	"The grass is greener where the standups are shorter.",
	"Quiet quitting is for people without a card to fill.",
	"Your two weeks' notice is under construction.",
	"Stamp now, resign later.",
	"Somewhere out there is a job that won't page you at 3am.",
	"A filled card is worth a thousand exit interviews.",
	"Today's synergy is tomorrow's stamp.",
	"Keep calm and update your resume.",
	"The only sprint worth finishing is the one to the door.",
}

// Pick returns the quote for the rotation window containing now.
// refreshHours is the window length; non-positive values fall back to a
// daily rotation.
func Pick(now time.Time, refreshHours int) string {
	if refreshHours <= 0 {
		refreshHours = 24
	}
	window := now.Unix() / int64(refreshHours*3600)
	idx := int(window % int64(len(Quotes)))
	if idx < 0 {
		idx += len(Quotes)
	}
	return Quotes[idx]
}
