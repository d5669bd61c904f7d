// Package export renders contact collections as CSV for download.
package export

import (
	"strings"
	"time"

	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/client/remote"
)

// ContactsCSV renders the fixed 15-column table: one header row using the
// remote protocol's field labels, one row per contact. Every field is
// wrapped in double quotes with internal quotes doubled, so spreadsheet
// imports survive commas and line breaks in free text.
func ContactsCSV(contacts []models.Contact) string {
	var b strings.Builder

	b.WriteString(strings.Join(remote.FieldLabels(), ","))
	for _, c := range contacts {
		fields := []string{
			c.Name, c.Type, c.Position, c.Organization, c.Phone,
			c.Email, c.Address.No, c.Address.Soi, c.Address.Moo, c.Address.Road,
			c.Address.Subdistrict, c.Address.District, c.Address.Province, c.Address.Zipcode, c.Link,
		}
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return b.String()
}

// Filename returns the dated export file name.
func Filename(t time.Time) string {
	return "pr_contacts_" + t.Format("2006-01-02") + ".csv"
}
