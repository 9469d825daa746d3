package calendar

import (
	"fmt"
	"strings"
	"time"
)

const icalTimeLayout = "20060102T150405Z"

// Event is one calendar entry rendered into the iCal feed.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// RenderICS builds an RFC 5545 VCALENDAR document from events. Lines use CRLF
// endings; text values are escaped per RFC 5545 section 3.3.11.
func RenderICS(calendarName string, events []Event) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//creativable//CRM Calendar//EN")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "X-WR-CALNAME:"+escapeText(calendarName))

	for _, ev := range events {
		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+ev.UID)
		writeLine(&b, "DTSTAMP:"+time.Now().UTC().Format(icalTimeLayout))
		writeLine(&b, "DTSTART:"+ev.Start.UTC().Format(icalTimeLayout))
		writeLine(&b, "DTEND:"+ev.End.UTC().Format(icalTimeLayout))
		writeLine(&b, "SUMMARY:"+escapeText(ev.Summary))
		if ev.Description != "" {
			writeLine(&b, "DESCRIPTION:"+escapeText(ev.Description))
		}
		if ev.Location != "" {
			writeLine(&b, "LOCATION:"+escapeText(ev.Location))
		}
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	fmt.Fprintf(b, "%s\r\n", line)
}

// escapeText escapes the characters RFC 5545 reserves in TEXT values.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
