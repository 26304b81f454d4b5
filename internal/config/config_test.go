package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/umbrella/internal/files/filesystem"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HEADER_DEST", "/out/umbrella.h")
	t.Setenv("HEADER_TEMPLATE", "/in/umbrella.h.in")
	t.Setenv("INCLUDES_DIR", "/in/include")
	t.Setenv("UMBRELLA_STATIC_INCLUDES", "/in/static_includes.txt")
	t.Setenv("UMBRELLA_NAMESPACE", "mylib")

	env := LoadFromEnvironment()

	assert.Equal(t, "/out/umbrella.h", env.HeaderDest)
	assert.Equal(t, "/in/umbrella.h.in", env.HeaderTemplate)
	assert.Equal(t, "/in/include", env.IncludesDir)
	assert.Equal(t, "/in/static_includes.txt", env.StaticIncludes)
	assert.Equal(t, "mylib", env.Namespace)
}

func TestResolve_FlagsWinOverEnvironment(t *testing.T) {
	env := &EnvVars{
		HeaderDest: "/env/umbrella.h",
		Namespace:  "envns",
	}

	cfg, err := Resolve(Config{Dest: "/flag/umbrella.h"}, env)
	require.NoError(t, err)

	assert.Equal(t, "/flag/umbrella.h", cfg.Dest)
	assert.Equal(t, "envns", cfg.Namespace)
}

func TestResolve_EnvironmentFillsGaps(t *testing.T) {
	env := &EnvVars{
		HeaderDest:     "/env/umbrella.h",
		HeaderTemplate: "/env/umbrella.h.in",
		IncludesDir:    "/env/include",
	}

	cfg, err := Resolve(Config{}, env)
	require.NoError(t, err)

	assert.Equal(t, "/env/umbrella.h", cfg.Dest)
	assert.Equal(t, "/env/umbrella.h.in", cfg.Template)
	assert.Equal(t, "/env/include", cfg.IncludesDir)
}

func TestResolve_DefaultNamespace(t *testing.T) {
	cfg, err := Resolve(Config{}, nil)
	require.NoError(t, err)

	assert.Equal(t, umbrella.DefaultNamespace, cfg.Namespace)
}

func TestResolve_ProjectFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	staticPath := filepath.Join(dir, "static_includes.txt")
	require.NoError(t, os.WriteFile(staticPath, []byte("#import <mylib/a.h>\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte("namespace: mylib\ntemplate: umbrella.h.in\ndest: umbrella.h\n"), 0644))

	cfg, err := Resolve(Config{StaticIncludes: staticPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, "mylib", cfg.Namespace)
	assert.Equal(t, "umbrella.h.in", cfg.Template)
	assert.Equal(t, "umbrella.h", cfg.Dest)
}

func TestResolve_FlagsWinOverProjectFile(t *testing.T) {
	dir := t.TempDir()
	staticPath := filepath.Join(dir, "static_includes.txt")
	require.NoError(t, os.WriteFile(staticPath, []byte("#import <mylib/a.h>\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte("namespace: mylib\n"), 0644))

	cfg, err := Resolve(Config{StaticIncludes: staticPath, Namespace: "flagns"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "flagns", cfg.Namespace)
}

func TestResolve_MalformedProjectFile(t *testing.T) {
	dir := t.TempDir()
	staticPath := filepath.Join(dir, "static_includes.txt")
	require.NoError(t, os.WriteFile(staticPath, []byte("#import <mylib/a.h>\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte("namespace: [unclosed\n"), 0644))

	_, err := Resolve(Config{StaticIncludes: staticPath}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, umbrella.ErrInvalidConfig)
}

func TestLoadProject_NotFound(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestValidate_MissingRequiredSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing dest", Config{Template: "t", IncludesDir: "i", StaticIncludes: "s"}, "HEADER_DEST"},
		{"missing template", Config{Dest: "d", IncludesDir: "i", StaticIncludes: "s"}, "HEADER_TEMPLATE"},
		{"missing includes dir", Config{Dest: "d", Template: "t", StaticIncludes: "s"}, "INCLUDES_DIR"},
		{"missing static list", Config{Dest: "d", Template: "t", IncludesDir: "i"}, "UMBRELLA_STATIC_INCLUDES"},
	}

	fs := filesystem.NewMemoryFileSystem("/")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(fs)
			require.Error(t, err)
			assert.ErrorIs(t, err, umbrella.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_UnreadableResources(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("umbrella.h.in", "@GENERATED_CONTENT@")
	fs.AddFile("static_includes.txt", "#import <openssl/a.h>")
	fs.AddFile("include/openssl/a.h", "")

	valid := Config{
		Dest:           "/project/umbrella.h",
		Template:       "/project/umbrella.h.in",
		IncludesDir:    "/project/include",
		StaticIncludes: "/project/static_includes.txt",
		Namespace:      "openssl",
	}
	require.NoError(t, valid.Validate(fs))

	missingTemplate := valid
	missingTemplate.Template = "/project/missing.h.in"
	assert.ErrorIs(t, missingTemplate.Validate(fs), umbrella.ErrInvalidConfig)

	missingStatic := valid
	missingStatic.StaticIncludes = "/project/missing.txt"
	assert.ErrorIs(t, missingStatic.Validate(fs), umbrella.ErrInvalidConfig)

	fileAsDir := valid
	fileAsDir.IncludesDir = "/project/umbrella.h.in"
	assert.ErrorIs(t, fileAsDir.Validate(fs), umbrella.ErrInvalidConfig)
}
