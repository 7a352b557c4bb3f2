package iconpack

import (
	"bytes"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"gopkg.in/yaml.v3"
)

// Extension of installed pack files.
const Extension = ".yaml"

// Pack is a named rule collection.
type Pack struct {
	Name        string
	Description string
	Rules       []rules.Rule
}

type document struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Rules       []rules.Spec `yaml:"rules"`
}

// Encode writes p as YAML.
func Encode(w io.Writer, p Pack) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New(errors.ErrPackWrite, "icon pack has no name")
	}
	doc := document{Name: p.Name, Description: p.Description}
	for _, r := range p.Rules {
		if r.ParentID != "" {
			continue
		}
		doc.Rules = append(doc.Rules, rules.SpecOf(r))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrapf(err, errors.ErrPackWrite, "failed to encode icon pack %q", p.Name)
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrPackWrite, "failed to encode icon pack %q", p.Name)
	}
	return nil
}

// Decode reads a YAML pack. Every rule is validated and tagged with the
// pack name.
func Decode(r io.Reader) (Pack, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Pack{}, errors.Wrap(err, errors.ErrPackRead, "failed to decode icon pack")
	}
	if strings.TrimSpace(doc.Name) == "" {
		return Pack{}, errors.New(errors.ErrPackRead, "icon pack has no name")
	}

	built, err := rules.BuildAll(doc.Rules, doc.Name)
	if err != nil {
		return Pack{}, errors.Wrapf(err, errors.ErrPackRead, "icon pack %q", doc.Name).
			WithDetail("pack", doc.Name)
	}
	return Pack{Name: doc.Name, Description: doc.Description, Rules: built}, nil
}

// Load reads the pack file at name.
func Load(fsys filesystem.FS, name string) (Pack, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return Pack{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read icon pack %s", name)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Pack{}, errors.Wrapf(err, errors.ErrPackRead, "invalid icon pack %s", name).
			WithDetail("file", name)
	}
	return p, nil
}

// Save writes p to name, creating parent directories.
func Save(fsys filesystem.FS, name string, p Pack) error {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", filepath.Dir(name))
	}
	if err := fsys.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPackWrite, "failed to write icon pack %s", name)
	}
	return nil
}

// FileName returns the installed file name of a pack called name.
func FileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String() + Extension
}

// Install saves p into dir under FileName(p.Name) and returns the path.
func Install(fsys filesystem.FS, dir string, p Pack) (string, error) {
	target := filepath.Join(dir, FileName(p.Name))
	if err := Save(fsys, target, p); err != nil {
		return "", err
	}
	logger := logging.GetLogger("iconpack")
	logger.Info().
		Str("pack", p.Name).
		Int("rules", len(p.Rules)).
		Str("file", target).
		Msg("Icon pack installed")
	return target, nil
}

// LoadDir reads every pack installed in dir, in file name order. A
// missing dir holds no packs. Invalid packs are skipped and logged.
func LoadDir(fsys filesystem.FS, dir string) ([]Pack, error) {
	logger := logging.GetLogger("iconpack")
	if !filesystem.Exists(fsys, dir) {
		return nil, nil
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list icon packs in %s", dir)
	}

	var names []string
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	packs := make([]Pack, 0, len(names))
	for _, n := range names {
		p, err := Load(fsys, filepath.Join(dir, n))
		if err != nil {
			logger.Warn().Err(err).Str("file", n).Msg("Skipping invalid icon pack")
			continue
		}
		packs = append(packs, p)
	}
	logger.Debug().Str("dir", dir).Int("packs", len(packs)).Msg("Icon packs loaded")
	return packs, nil
}

// Merge appends the rules of packs to existing, skipping rules equal to
// one already present.
func Merge(existing []rules.Rule, packs ...Pack) []rules.Rule {
	out := append([]rules.Rule(nil), existing...)
	for _, p := range packs {
	next:
		for _, r := range p.Rules {
			for _, have := range out {
				if have.Equal(r) {
					continue next
				}
			}
			out = append(out, r)
		}
	}
	return out
}

// Export builds a pack named name from rules, dropping derived alternates.
func Export(name, description string, rs []rules.Rule) Pack {
	p := Pack{Name: name, Description: description}
	for _, r := range rs {
		if r.ParentID != "" {
			continue
		}
		r.SourcePack = ""
		p.Rules = append(p.Rules, r)
	}
	return p
}
