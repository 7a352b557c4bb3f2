// Package iconref holds the opaque icon reference attached to a rule.
//
// A Ref is one of three things: a path to an icon bundled with the
// catalog, raw image bytes supplied by the user (stored base64 encoded),
// or the name of an icon the host provides. Refs are comparable values
// and round trip through text, which is how they appear in settings files
// and icon packs:
//
//	extra-icons/pkg_json.svg              bundled
//	data:image/svg+xml;base64,PHN2Zy8+    inline
//	ide:AllIcons.Nodes.Folder             named
package iconref

import (
	"encoding/base64"
	"strings"

	"github.com/arthur-debert/iconrules/pkg/errors"
)

// Kind tells how a Ref is resolved.
type Kind int

const (
	// KindNone is the zero Ref.
	KindNone Kind = iota
	KindBundled
	KindInline
	KindNamed
)

const (
	inlinePrefix = "data:image/"
	namedPrefix  = "ide:"
	bundledRoot  = "extra-icons/"
	newUIDir     = "newui/"
)

// Ref is an icon reference.
type Ref struct {
	kind   Kind
	value  string // bundled path, host icon name or base64 payload
	format string // inline only, e.g. "svg+xml" or "png"
}

// Bundled returns a reference to an icon shipped with the catalog.
func Bundled(path string) Ref {
	return Ref{kind: KindBundled, value: path}
}

// Inline returns a reference carrying the image bytes themselves.
func Inline(data []byte, format string) Ref {
	if format == "" {
		format = "png"
	}
	return Ref{kind: KindInline, value: base64.StdEncoding.EncodeToString(data), format: format}
}

// Named returns a reference to an icon provided by the host.
func Named(name string) Ref {
	return Ref{kind: KindNamed, value: name}
}

// Kind returns how the reference is resolved.
func (r Ref) Kind() Kind { return r.kind }

// IsZero reports whether r references nothing.
func (r Ref) IsZero() bool { return r.kind == KindNone }

// IsBundled reports whether r points at a catalog icon.
func (r Ref) IsBundled() bool { return r.kind == KindBundled }

// Path returns the bundled path or host icon name. It is empty for inline refs.
func (r Ref) Path() string {
	if r.kind == KindInline {
		return ""
	}
	return r.value
}

// Format returns the image format of an inline ref.
func (r Ref) Format() string { return r.format }

// Decode returns the image bytes of an inline ref.
func (r Ref) Decode() ([]byte, error) {
	if r.kind != KindInline {
		return nil, errors.Newf(errors.ErrInvalidInput, "icon %q is not inline", r.String())
	}
	data, err := base64.StdEncoding.DecodeString(r.value)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid inline icon data")
	}
	return data, nil
}

// NewUIVariant returns the new UI flavour of a bundled icon:
// extra-icons/x.svg becomes extra-icons/newui/x.svg. Other refs, and icons
// already in the new UI directory, are returned unchanged.
func (r Ref) NewUIVariant() Ref {
	if r.kind != KindBundled || !strings.HasPrefix(r.value, bundledRoot) {
		return r
	}
	rest := strings.TrimPrefix(r.value, bundledRoot)
	if strings.HasPrefix(rest, newUIDir) {
		return r
	}
	return Bundled(bundledRoot + newUIDir + rest)
}

// String returns the text form of r.
func (r Ref) String() string {
	switch r.kind {
	case KindBundled:
		return r.value
	case KindInline:
		return inlinePrefix + r.format + ";base64," + r.value
	case KindNamed:
		return namedPrefix + r.value
	default:
		return ""
	}
}

// Parse reads the text form of a reference. The empty string yields the
// zero Ref.
func Parse(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Ref{}, nil
	case strings.HasPrefix(s, inlinePrefix):
		meta, payload, ok := strings.Cut(strings.TrimPrefix(s, inlinePrefix), ",")
		format, enc, _ := strings.Cut(meta, ";")
		if !ok || enc != "base64" || format == "" {
			return Ref{}, errors.Newf(errors.ErrInvalidInput, "malformed inline icon %q", truncate(s))
		}
		if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
			return Ref{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid inline icon data")
		}
		return Ref{kind: KindInline, value: payload, format: format}, nil
	case strings.HasPrefix(s, namedPrefix):
		name := strings.TrimPrefix(s, namedPrefix)
		if name == "" {
			return Ref{}, errors.New(errors.ErrInvalidInput, "empty host icon name")
		}
		return Named(name), nil
	default:
		return Bundled(s), nil
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Ref) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
