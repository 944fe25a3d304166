// Package charset provides the ordered set of text encodings tried when
// decoding playlist entries whose true encoding is unknown.
//
// Decoding is strict: a byte sequence the encoding cannot represent fails
// instead of being replaced, so callers can fall through to the next
// candidate encoding.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/lietu/plstats/internal/shared"
)

// Charset pairs an encoding name with a strict decoder for it.
type Charset struct {
	Name   string
	decode func([]byte) (string, error)
}

// Decode decodes raw bytes, failing when the bytes are not valid for this
// encoding.
func (c Charset) Decode(raw []byte) (string, error) {
	return c.decode(raw)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("invalid utf-8 sequence")
	}
	return string(raw), nil
}

func decodeASCII(raw []byte) (string, error) {
	for _, b := range raw {
		if b >= 0x80 {
			return "", fmt.Errorf("byte 0x%02x outside ascii range", b)
		}
	}
	return string(raw), nil
}

func decodeUTF8SIG(raw []byte) (string, error) {
	return decodeUTF8(bytes.TrimPrefix(raw, utf8BOM))
}

// textCharset wraps an [encoding.Encoding] decoder, rejecting output that
// contains the Unicode replacement character since x/text substitutes it for
// undecodable input instead of returning an error.
func textCharset(name string, enc encoding.Encoding) Charset {
	return Charset{
		Name: name,
		decode: func(raw []byte) (string, error) {
			out, err := enc.NewDecoder().Bytes(raw)
			if err != nil {
				return "", err
			}
			decoded := string(out)
			if strings.ContainsRune(decoded, utf8.RuneError) {
				return "", fmt.Errorf("undecodable bytes for %s", name)
			}
			return decoded, nil
		},
	}
}

// ordered mirrors the trial order playlists have historically needed: the
// host-native encoding first, then Latin-1 and UTF-8 variants, then a long
// tail of regional and legacy encodings. The first three cover nearly every
// real playlist; the rest exist for the odd stray file.
var ordered = []Charset{
	{Name: "utf-8", decode: decodeUTF8},
	textCharset("latin-1", charmap.ISO8859_1),
	textCharset("cp850", charmap.CodePage850),
	{Name: "ascii", decode: decodeASCII},
	textCharset("big5", traditionalchinese.Big5),
	textCharset("cp037", charmap.CodePage037),
	textCharset("cp437", charmap.CodePage437),
	textCharset("cp852", charmap.CodePage852),
	textCharset("cp855", charmap.CodePage855),
	textCharset("cp858", charmap.CodePage858),
	textCharset("cp860", charmap.CodePage860),
	textCharset("cp862", charmap.CodePage862),
	textCharset("cp863", charmap.CodePage863),
	textCharset("cp865", charmap.CodePage865),
	textCharset("cp866", charmap.CodePage866),
	textCharset("windows-874", charmap.Windows874),
	textCharset("shift-jis", japanese.ShiftJIS),
	textCharset("euc-kr", korean.EUCKR),
	textCharset("cp1140", charmap.CodePage1140),
	textCharset("windows-1250", charmap.Windows1250),
	textCharset("windows-1251", charmap.Windows1251),
	textCharset("windows-1252", charmap.Windows1252),
	textCharset("windows-1253", charmap.Windows1253),
	textCharset("windows-1254", charmap.Windows1254),
	textCharset("windows-1255", charmap.Windows1255),
	textCharset("windows-1256", charmap.Windows1256),
	textCharset("windows-1257", charmap.Windows1257),
	textCharset("windows-1258", charmap.Windows1258),
	textCharset("euc-jp", japanese.EUCJP),
	textCharset("gbk", simplifiedchinese.GBK),
	textCharset("gb18030", simplifiedchinese.GB18030),
	textCharset("hz-gb-2312", simplifiedchinese.HZGB2312),
	textCharset("iso-2022-jp", japanese.ISO2022JP),
	textCharset("iso-8859-2", charmap.ISO8859_2),
	textCharset("iso-8859-3", charmap.ISO8859_3),
	textCharset("iso-8859-4", charmap.ISO8859_4),
	textCharset("iso-8859-5", charmap.ISO8859_5),
	textCharset("iso-8859-6", charmap.ISO8859_6),
	textCharset("iso-8859-7", charmap.ISO8859_7),
	textCharset("iso-8859-8", charmap.ISO8859_8),
	textCharset("iso-8859-9", charmap.ISO8859_9),
	textCharset("iso-8859-10", charmap.ISO8859_10),
	textCharset("iso-8859-13", charmap.ISO8859_13),
	textCharset("iso-8859-14", charmap.ISO8859_14),
	textCharset("iso-8859-15", charmap.ISO8859_15),
	textCharset("iso-8859-16", charmap.ISO8859_16),
	textCharset("koi8-r", charmap.KOI8R),
	textCharset("koi8-u", charmap.KOI8U),
	textCharset("mac-cyrillic", charmap.MacintoshCyrillic),
	textCharset("mac-roman", charmap.Macintosh),
	textCharset("utf-32", utf32.UTF32(utf32.BigEndian, utf32.UseBOM)),
	textCharset("utf-32-be", utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)),
	textCharset("utf-32-le", utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)),
	textCharset("utf-16", unicode.UTF16(unicode.BigEndian, unicode.UseBOM)),
	textCharset("utf-16-be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)),
	textCharset("utf-16-le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)),
	{Name: "utf-8-sig", decode: decodeUTF8SIG},
}

var byName = func() map[string]Charset {
	m := make(map[string]Charset, len(ordered))
	for _, c := range ordered {
		m[c.Name] = c
	}
	return m
}()

// Default returns the built-in encoding trial order.
func Default() []Charset {
	out := make([]Charset, len(ordered))
	copy(out, ordered)
	return out
}

// Names returns the names of the built-in trial order, in order.
func Names() []string {
	names := make([]string, len(ordered))
	for i, c := range ordered {
		names[i] = c.Name
	}
	return names
}

// Priority resolves a configured trial-order override into charsets. An
// empty list keeps the default order; an unknown name fails with
// [shared.ErrUnknownEncoding].
func Priority(names []string) ([]Charset, error) {
	if len(names) == 0 {
		return Default(), nil
	}

	out := make([]Charset, 0, len(names))
	for _, name := range names {
		c, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", shared.ErrUnknownEncoding, name)
		}
		out = append(out, c)
	}
	return out, nil
}
