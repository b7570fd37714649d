package publication

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Fields holds the values pulled out of a PubMed efetch document. Empty
// strings mean the element was absent.
type Fields struct {
	Title    string
	Abstract string
	Journal  string
	Volume   string
	Pages    string
	Year     string
	Month    string
	Day      string
	Authors  string
}

// ExtractFields streams a PubMed article set and keeps the first occurrence
// of each field, in document order.
func ExtractFields(r io.Reader) (Fields, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var f Fields
	text := map[string]*string{
		"ArticleTitle": &f.Title,
		"AbstractText": &f.Abstract,
		"Volume":       &f.Volume,
		"MedlinePgn":   &f.Pages,
	}
	done := make(map[string]bool, 8)
	var stack []string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Fields{}, fmt.Errorf("decode pubmed xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}

			switch {
			case text[name] != nil && !done[name]:
				*text[name] = strings.TrimSpace(readCharData(dec))
				done[name] = true
				continue
			case name == "Title" && parent == "Journal" && !done["Journal/Title"]:
				f.Journal = strings.TrimSpace(readCharData(dec))
				done["Journal/Title"] = true
				continue
			case name == "PubDate" && !done[name]:
				parsePubDate(dec, &f)
				done[name] = true
				continue
			case name == "AuthorList" && !done[name]:
				parseAuthorList(dec, t, &f)
				done[name] = true
				continue
			}
			stack = append(stack, name)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return f, nil
}

func parsePubDate(dec *xml.Decoder, f *Fields) {
	var medline string
	for {
		tok, err := dec.Token()
		if err != nil {
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v := strings.TrimSpace(readCharData(dec))
			switch t.Name.Local {
			case "Year":
				f.Year = v
			case "Month":
				f.Month = v
			case "Day":
				f.Day = v
			case "MedlineDate":
				medline = v
			}
		case xml.EndElement:
			// Some articles only carry a free-form date like "1998 Dec-1999 Jan".
			if f.Year == "" && len(medline) >= 4 {
				f.Year = medline[:4]
			}
			return
		}
	}
}

func parseAuthorList(dec *xml.Decoder, se xml.StartElement, f *Fields) {
	complete := getAttr(se, "CompleteYN") != "N"
	var authors []string
	children := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			children++
			if t.Name.Local == "Author" {
				authors = append(authors, parseAuthor(dec))
			} else {
				dec.Skip()
			}
		case xml.EndElement:
			if children == 0 {
				return
			}
			if !complete {
				authors = append(authors, "et al.")
			}
			f.Authors = strings.Join(authors, ", ")
			return
		}
	}
}

// Author is the name parts of one PubMed author.
type Author struct {
	ForeName string
	Initials string
	LastName string
}

// FormatAuthor renders an author as "ForeName LastName", falling back to
// initials when there is no fore name.
func FormatAuthor(a Author) string {
	parts := make([]string, 0, 2)
	if a.ForeName != "" {
		parts = append(parts, a.ForeName)
	} else if a.Initials != "" {
		parts = append(parts, a.Initials)
	}
	if a.LastName != "" {
		parts = append(parts, a.LastName)
	}
	return strings.Join(parts, " ")
}

func parseAuthor(dec *xml.Decoder) string {
	var a Author
	for {
		tok, err := dec.Token()
		if err != nil {
			return FormatAuthor(a)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v := strings.TrimSpace(readCharData(dec))
			switch t.Name.Local {
			case "ForeName":
				a.ForeName = v
			case "Initials":
				a.Initials = v
			case "LastName":
				a.LastName = v
			}
		case xml.EndElement:
			return FormatAuthor(a)
		}
	}
}

func getAttr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// readCharData collects the text of the current element, including text of
// nested markup such as <i>, and consumes its end tag.
func readCharData(dec *xml.Decoder) string {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return sb.String()
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			sb.WriteString(readCharData(dec))
		case xml.EndElement:
			return sb.String()
		}
	}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
