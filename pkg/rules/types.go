package rules

import (
	"strings"

	"github.com/arthur-debert/iconrules/pkg/errors"
)

// Kind is what a rule decorates.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
	// KindIconOverride rules replace a host icon and have no conditions.
	KindIconOverride Kind = "icon"
)

// ParseKind reads a kind name. "dir" is accepted for folders.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return KindFile, nil
	case "folder", "dir", "directory":
		return KindFolder, nil
	case "icon", "icon_override":
		return KindIconOverride, nil
	default:
		return "", errors.Newf(errors.ErrUnknownKind, "unknown rule kind %q", s)
	}
}

func (k Kind) String() string { return string(k) }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UIType restricts a rule to the old or the new host UI. The zero value
// applies to both.
type UIType string

const (
	UIAny UIType = ""
	UIOld UIType = "old"
	UINew UIType = "new"
)

// ParseUIType reads a UI type name. The empty string is UIAny.
func ParseUIType(s string) (UIType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return UIAny, nil
	case "old", "old_ui":
		return UIOld, nil
	case "new", "new_ui":
		return UINew, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown UI type %q", s)
	}
}

// Accepts reports whether a rule restricted to u applies under ui.
func (u UIType) Accepts(ui UIType) bool {
	return u == UIAny || ui == UIAny || u == ui
}

// Tag groups related rules so they can be toggled together.
type Tag string

const (
	TagAngular     Tag = "angular"
	TagDocker      Tag = "docker"
	TagFlutter     Tag = "flutter"
	TagFlyway      Tag = "flyway"
	TagHelm        Tag = "helm"
	TagHTML        Tag = "html"
	TagKubernetes  Tag = "kubernetes"
	TagLibreOffice Tag = "libre_office"
	TagLiquibase   Tag = "liquibase"
	TagMSOffice    Tag = "ms_office"
	TagNestJS      Tag = "nestjs"
	TagPrettier    Tag = "prettier"
	TagStorybook   Tag = "storybook"
	TagTravis      Tag = "travis"
	TagWriterside  Tag = "writerside"
)

// TagInfo is the display data of a tag.
type TagInfo struct {
	Name string
	Icon string
}

var tagInfo = map[Tag]TagInfo{
	TagAngular:     {"Angular", "extra-icons/angular2.svg"},
	TagDocker:      {"Docker", "extra-icons/docker_.svg"},
	TagFlutter:     {"Flutter", "extra-icons/flutter.svg"},
	TagFlyway:      {"Flyway", "extra-icons/flyway.svg"},
	TagHelm:        {"Helm", "extra-icons/helm.svg"},
	TagHTML:        {"HTML", "extra-icons/html5.svg"},
	TagKubernetes:  {"Kubernetes", "extra-icons/kubernetes.svg"},
	TagLibreOffice: {"LibreOffice", "extra-icons/officedocs/lowriter.svg"},
	TagLiquibase:   {"Liquibase", "extra-icons/liquibase.svg"},
	TagMSOffice:    {"MS Office", "extra-icons/officedocs/msword-2019.svg"},
	TagNestJS:      {"NestJS", "extra-icons/nestjs.svg"},
	TagPrettier:    {"Prettier", "extra-icons/prettier.svg"},
	TagStorybook:   {"Storybook", "extra-icons/storybook.svg"},
	TagTravis:      {"Travis CI", "extra-icons/travis.svg"},
	TagWriterside:  {"Writerside", "extra-icons/writerside.svg"},
}

// Info returns the display name and icon of t.
func (t Tag) Info() (TagInfo, bool) {
	info, ok := tagInfo[t]
	return info, ok
}

// ParseTag reads a tag id.
func ParseTag(s string) (Tag, error) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tagInfo[t]; !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown tag %q", s)
	}
	return t, nil
}
