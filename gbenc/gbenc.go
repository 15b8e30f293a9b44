// Package gbenc transcodes UTF-8 text to the GB2312 (EUC-CN) byte
// form consumed by HZK font files: ASCII bytes below 0x80, ideographs
// as two bytes in the 0xA1..0xFE range.
//
// The transcoder is built on the golang.org/x/text GBK codec. GBK is a
// byte-compatible superset of GB2312 over the EUC-CN range, so every
// GB2312 character encodes to the same two bytes under both. GBK-only
// byte forms (pairs with a trail byte outside 0xA1..0xFE, or the
// single-byte euro sign) would break the strict <0x80 / >=0x80 split
// that run segmentation relies on, so they are replaced with the
// ASCII substitute byte, like any rune the codec can't encode at all.
package gbenc

import "golang.org/x/text/encoding"
import "golang.org/x/text/encoding/simplifiedchinese"

var codec = encoding.ReplaceUnsupported(simplifiedchinese.GBK.NewEncoder())

const substitute = byte(encoding.ASCIISub)

// Encode transcodes UTF-8 text to GB2312 bytes. Runes with no GB2312
// mapping, including GBK-only characters, are replaced with the ASCII
// substitute byte rather than failing the whole string. Every byte of
// the result is either below 0x80 or part of a pair with both bytes
// in 0xA1..0xFE.
func Encode(text string) ([]byte, error) {
	encoded, err := codec.Bytes([]byte(text))
	if err != nil { return nil, err }
	return sanitize(encoded), nil
}

// sanitize rewrites GBK byte forms with no GB2312 counterpart to the
// substitute byte, in place (the output is never longer than the
// consumed input).
func sanitize(encoded []byte) []byte {
	w := 0
	for i := 0; i < len(encoded); {
		b := encoded[i]
		if b < 0x80 {
			encoded[w] = b
			w, i = w+1, i+1
			continue
		}
		if b == 0x80 { // the euro sign, a GBK single-byte extension
			encoded[w] = substitute
			w, i = w+1, i+1
			continue
		}
		if i+1 < len(encoded) && isGB2312Pair(b, encoded[i+1]) {
			encoded[w] = b
			encoded[w+1] = encoded[i+1]
			w, i = w+2, i+2
			continue
		}
		// GBK-only pair, or a truncated trailing lead byte
		encoded[w] = substitute
		w += 1
		if i+1 < len(encoded) { i += 2 } else { i += 1 }
	}
	return encoded[:w]
}

func isGB2312Pair(b0, b1 byte) bool {
	return b0 >= 0xA1 && b0 <= 0xFE && b1 >= 0xA1 && b1 <= 0xFE
}

// EncodeRune transcodes a single rune. The bool is false when the rune
// does not map to a two-byte GB2312 pair.
func EncodeRune(r rune) (b0, b1 byte, ok bool) {
	encoded, err := Encode(string(r))
	if err != nil || len(encoded) != 2 { return 0, 0, false }
	return encoded[0], encoded[1], true
}

// EncodedLen returns the number of bytes Encode would produce for the
// given text, or 0 if the text can't be transcoded.
func EncodedLen(text string) int {
	encoded, err := Encode(text)
	if err != nil { return 0 }
	return len(encoded)
}
