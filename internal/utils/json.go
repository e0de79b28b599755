package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// ErrInvalidJSON is returned by PrettyJSON when the input is not a single
// valid JSON document.
var ErrInvalidJSON = errors.New("invalid json document")

// PrettyJSON validates raw and re-serializes it indented with two spaces.
// Key order is kept as received. Numbers are rewritten in their shortest
// float64 form, so 1.0 becomes 1 and 1e3 becomes 1000; values beyond the
// float64 range become null.
func PrettyJSON(raw []byte) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return "", ErrInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var compact bytes.Buffer
	if err := writeJSONValue(&compact, dec); err != nil {
		return "", errors.Join(ErrInvalidJSON, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return "", errors.Join(ErrInvalidJSON, err)
	}

	return out.String(), nil
}

// writeJSONValue copies the next value from dec to buf in compact form.
func writeJSONValue(buf *bytes.Buffer, dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch v := tok.(type) {
	case json.Delim:
		return writeJSONContainer(buf, dec, v)
	case json.Number:
		writeJSONNumber(buf, v)
	case string:
		return writeJSONString(buf, v)
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case nil:
		buf.WriteString("null")
	}

	return nil
}

func writeJSONContainer(buf *bytes.Buffer, dec *json.Decoder, open json.Delim) error {
	isObject := open == '{'
	buf.WriteRune(rune(open))

	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if isObject {
			key, err := dec.Token()
			if err != nil {
				return err
			}
			if err = writeJSONString(buf, key.(string)); err != nil {
				return err
			}
			buf.WriteByte(':')
		}
		if err := writeJSONValue(buf, dec); err != nil {
			return err
		}
	}

	closing, err := dec.Token()
	if err != nil {
		return err
	}
	buf.WriteRune(rune(closing.(json.Delim)))

	return nil
}

func writeJSONNumber(buf *bytes.Buffer, n json.Number) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsInf(f, 0) {
		buf.WriteString("null")
		return
	}
	if f == 0 {
		// drops the sign of -0
		f = 0
	}
	// encoding/json formats float64 the way JavaScript prints numbers
	b, _ := json.Marshal(f)
	buf.Write(b)
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
