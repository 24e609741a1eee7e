package office

import "github.com/huynhanx03/go-pcqueue/pkg/encoding"

// Document is the payload a clerk files and a scanner prints.
type Document struct {
	ID    int64
	Clerk int
	Seq   int
}

// Label is the short printable form of the document id.
func (d *Document) Label() string { return encoding.Base62Encode(d.ID) }
