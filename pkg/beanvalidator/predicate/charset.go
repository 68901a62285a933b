package predicate

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// CharsetSupported reports whether name identifies a text encoding this
// runtime can decode. Names are looked up in the WHATWG label index, then
// the IANA and MIME registries; an underscore spelling such as EUC_JP is
// also tried with hyphens.
func CharsetSupported(name string) bool {
	if !legalCharsetName(name) {
		return false
	}
	if lookupCharset(name) != nil {
		return true
	}
	if alt := strings.ReplaceAll(name, "_", "-"); alt != name {
		return lookupCharset(alt) != nil
	}
	return false
}

func lookupCharset(name string) encoding.Encoding {
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc
	}
	for _, idx := range []*ianaindex.Index{ianaindex.IANA, ianaindex.MIME} {
		// A registered but unsupported charset yields a nil encoding.
		if enc, err := idx.Encoding(name); err == nil && enc != nil {
			return enc
		}
	}
	return nil
}

// legalCharsetName applies the usual charset naming rule: a letter or digit
// followed by letters, digits and - + : _ .
func legalCharsetName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case i > 0 && strings.ContainsRune("-+:_.", r):
		default:
			return false
		}
	}
	return true
}
