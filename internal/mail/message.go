package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
)

// Field is one top-level key of the submitted order object, with its raw
// JSON value.
type Field struct {
	Key   string
	Value json.RawMessage
}

// ParseFields decodes a JSON object into its top-level fields, preserving the
// key order of the request body. Anything other than a single well-formed
// object is an error; the error message goes back to the client verbatim.
func ParseFields(body []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: key, Value: raw})
	}

	if _, err := dec.Token(); err != nil { // consume the closing brace
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}

	return fields, nil
}

// Message is one outbound order notification.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

// NewMessage assembles the seller notification for a submitted order: the
// subject names the copy count and customer, the text body is the full order
// pretty-printed, and the HTML body is a two-column table of it.
func NewMessage(to, from string, fields []Field) Message {
	return Message{
		To:      to,
		From:    from,
		Subject: subject(fields),
		Text:    textBody(fields),
		HTML:    htmlBody(fields),
	}
}

func subject(fields []Field) string {
	return fmt.Sprintf("Vargar&Vatten Beställning %s ex från %s",
		displayValue(lookup(fields, "copies")),
		displayValue(lookup(fields, "name")))
}

// textBody pretty-prints the order as indented JSON, keys in submission order.
func textBody(fields []Field) string {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, _ := json.Marshal(f.Key)
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(f.Value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return compact.String()
	}
	return out.String()
}

// htmlBody renders the order as a simple table, one row per field.
func htmlBody(fields []Field) string {
	var b strings.Builder
	b.WriteString("<div>\n<table>\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(f.Key),
			html.EscapeString(displayValue(f.Value)))
	}
	b.WriteString("</table>\n</div>")
	return b.String()
}

func lookup(fields []Field, key string) json.RawMessage {
	for _, f := range fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// displayValue renders a raw JSON value for human eyes: strings without
// quotes, everything else as written.
func displayValue(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
