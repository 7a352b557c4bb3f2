package enablers

import (
	"context"
	"path"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"gopkg.in/yaml.v3"
)

const pubspecFile = "pubspec.yaml"

// flutter enables every path of a project whose pubspec.yaml depends on
// the flutter SDK.
type flutter struct {
	fs       filesystem.FS
	basePath string
	enabled  atomic.Bool
}

func newFlutter(fs filesystem.FS, basePath string) Enabler {
	return &flutter{fs: fs, basePath: basePath}
}

type pubspec struct {
	Dependencies map[string]yaml.Node `yaml:"dependencies"`
}

func (f *flutter) Init(_ context.Context) error {
	data, err := f.fs.ReadFile(path.Join(f.basePath, pubspecFile))
	if err != nil {
		if filesystem.Exists(f.fs, path.Join(f.basePath, pubspecFile)) {
			return err
		}
		f.enabled.Store(false)
		return nil
	}
	f.enabled.Store(isFlutterPubspec(data))
	logger := logging.GetLogger("enablers.flutter")
	logger.Debug().
		Str("project", f.basePath).
		Bool("flutter", f.enabled.Load()).
		Msg("Enabler initialised")
	return nil
}

// isFlutterPubspec reports whether a pubspec declares the flutter SDK as a
// dependency. Unparseable files fall back to a plain text search.
func isFlutterPubspec(data []byte) bool {
	var spec pubspec
	if err := yaml.Unmarshal(data, &spec); err == nil {
		if dep, ok := spec.Dependencies["flutter"]; ok {
			var sdk struct {
				SDK string `yaml:"sdk"`
			}
			if dep.Decode(&sdk) == nil && sdk.SDK == "flutter" {
				return true
			}
		}
	}
	content := string(data)
	return strings.Contains(content, "sdk: flutter") || strings.Contains(content, "sdk:flutter")
}

func (f *flutter) Verify(string) bool { return f.enabled.Load() }

func (f *flutter) Terminal() bool { return false }
