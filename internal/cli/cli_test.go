package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaPath = filepath.Join("testdata", "db_schema.xml")

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// clearEnv isolates a test from DOGEN_* variables set by the caller.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{envVendor, envModule, envRoot} {
		t.Setenv(k, "")
	}
}

func TestRun(t *testing.T) {
	t.Run("generates from the first table without prompting on a pipe", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()
		res := execute(t, "1\n", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "--root", root)
		require.Equal(t, 0, res.code, res.stderr)

		iface := filepath.Join(root, "Acme", "Blog", "Api", "Data", "BlogPostInterface.php")
		model := filepath.Join(root, "Acme", "Blog", "Model", "Data", "BlogPost.php")
		assert.Equal(t, "Generated: "+iface+"\nGenerated: "+model+"\n", res.stdout)
		assert.Empty(t, res.stderr)

		content, err := os.ReadFile(iface)
		require.NoError(t, err)
		assert.Contains(t, string(content), "namespace Acme\\Blog\\Api\\Data;")
		assert.Contains(t, string(content), "const POST_ID = 'post_id';")
		assert.FileExists(t, model)
	})

	t.Run("selection read from stdin", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()
		res := execute(t, "2\n", "-v", "Acme", "-m", "Blog", "--db_schema", schemaPath, "--root", root)
		require.Equal(t, 0, res.code, res.stderr)

		content, err := os.ReadFile(filepath.Join(root, "Acme", "Blog", "Model", "Data", "BlogTag.php"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "public function setWeight(float $weight): self")
	})

	t.Run("invalid selection fails without writing", func(t *testing.T) {
		clearEnv(t)
		root := filepath.Join(t.TempDir(), "out")
		res := execute(t, "9\n", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "--root", root)
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
		assert.True(t, strings.HasPrefix(res.stderr, "Error: "))
		assert.Contains(t, res.stderr, "invalid selection")
		assert.NoDirExists(t, root)
	})

	t.Run("table flag skips the prompt", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()
		res := execute(t, "", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "-t", "acme_blog_tag", "-e", "Label", "--root", root)
		require.Equal(t, 0, res.code, res.stderr)
		assert.FileExists(t, filepath.Join(root, "Acme", "Blog", "Api", "Data", "LabelInterface.php"))
	})

	t.Run("unknown table", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "-t", "nope", "--root", t.TempDir())
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "nope")
	})

	t.Run("missing schema", func(t *testing.T) {
		clearEnv(t)
		missing := filepath.Join(t.TempDir(), "db_schema.xml")
		res := execute(t, "", "-v", "Acme", "-m", "Blog", "-db="+missing, "--root", t.TempDir())
		assert.Equal(t, 1, res.code)
		assert.Equal(t, "Error: dogen: schema file not found: "+missing+"\n", res.stderr)
	})

	t.Run("required flags", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "", "-db", schemaPath)
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `"vendor", "module"`)

		res = execute(t, "", "-v", "Acme", "-m", "Blog")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `"db_schema"`)
	})

	t.Run("inline attributes", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()
		res := execute(t, "", "-v", "Acme", "-m", "Blog", "-e", "Note", "-a", "note_id:int, body", "--root", root)
		require.Equal(t, 0, res.code, res.stderr)

		content, err := os.ReadFile(filepath.Join(root, "Acme", "Blog", "Api", "Data", "NoteInterface.php"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "public function setNoteId(int $noteId): self;")
		assert.Contains(t, string(content), "public function getBody(): string;")
	})

	t.Run("blank inline attributes still require the schema", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "", "-v", "Acme", "-m", "Blog", "-e", "Post", "-a", "   ", "--root", t.TempDir())
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `"db_schema"`)

		root := t.TempDir()
		res = execute(t, "", "-v", "Acme", "-m", "Blog", "-e", "Post", "-a", "   ", "-db", schemaPath, "-t", "acme_blog_post", "--root", root)
		require.Equal(t, 0, res.code, res.stderr)
		content, err := os.ReadFile(filepath.Join(root, "Acme", "Blog", "Api", "Data", "PostInterface.php"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "public const POST_ID = 'post_id';")
	})

	t.Run("inline attributes need an entity", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "", "-v", "Acme", "-m", "Blog", "-a", "body", "--root", t.TempDir())
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "entity")
	})

	t.Run("dry run", func(t *testing.T) {
		clearEnv(t)
		root := filepath.Join(t.TempDir(), "out")
		res := execute(t, "1\n", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "--root", root, "--dry-run")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Would generate: "+filepath.Join(root, "Acme", "Blog", "Model", "Data", "BlogPost.php"))
		assert.NoDirExists(t, root)
	})

	t.Run("verbose logs to stderr", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "1\n", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "--root", t.TempDir(), "--verbose", "--dry-run")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stderr, "level=DEBUG")
		assert.Contains(t, res.stderr, "table=acme_blog_post")
		assert.Contains(t, res.stderr, "files=0")

		res = execute(t, "1\n", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "--root", t.TempDir(), "--verbose")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stderr, "files=2")
	})

	t.Run("dashed schema flag is accepted", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "1\n", "-v", "Acme", "-m", "Blog", "--db-schema", schemaPath, "--root", t.TempDir(), "--dry-run")
		assert.Equal(t, 0, res.code, res.stderr)
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "", "-v", "Acme", "-m", "Blog", "-db", schemaPath, "extra")
		assert.Equal(t, 1, res.code)
	})
}

func TestSettingsPrecedence(t *testing.T) {
	configFile := func(t *testing.T, root string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "dogen.yaml")
		body := "root: " + root + "\nvendor: FileVendor\nmodule: FileModule\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("config file supplies defaults", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()
		res := execute(t, "1\n", "--config", configFile(t, root), "-db", schemaPath)
		require.Equal(t, 0, res.code, res.stderr)
		assert.FileExists(t, filepath.Join(root, "FileVendor", "FileModule", "Model", "Data", "BlogPost.php"))
	})

	t.Run("env overrides the config file", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()
		t.Setenv(envVendor, "EnvVendor")
		res := execute(t, "1\n", "--config", configFile(t, root), "-db", schemaPath)
		require.Equal(t, 0, res.code, res.stderr)
		assert.FileExists(t, filepath.Join(root, "EnvVendor", "FileModule", "Model", "Data", "BlogPost.php"))
	})

	t.Run("flags override env", func(t *testing.T) {
		clearEnv(t)
		root := t.TempDir()
		envRootDir := t.TempDir()
		t.Setenv(envVendor, "EnvVendor")
		t.Setenv(envRoot, envRootDir)
		res := execute(t, "1\n", "--config", configFile(t, t.TempDir()), "-v", "FlagVendor", "--root", root, "-db", schemaPath)
		require.Equal(t, 0, res.code, res.stderr)
		assert.FileExists(t, filepath.Join(root, "FlagVendor", "FileModule", "Model", "Data", "BlogPost.php"))
		assert.NoDirExists(t, filepath.Join(envRootDir, "FlagVendor"))
	})

	t.Run("explicit config must exist", func(t *testing.T) {
		clearEnv(t)
		res := execute(t, "1\n", "--config", filepath.Join(t.TempDir(), "none.yaml"), "-v", "A", "-m", "B", "-db", schemaPath)
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "read config")
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("missing optional file", func(t *testing.T) {
		cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "dogen.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, &FileConfig{}, cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dogen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("root: [unclosed\n"), 0o644))
		_, err := LoadFileConfig(path, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"shorthand", []string{"-db", "x.xml"}, []string{"--db_schema", "x.xml"}},
		{"shorthand with value", []string{"-db=x.xml"}, []string{"--db_schema=x.xml"}},
		{"other flags untouched", []string{"-v", "Acme", "--db_schema", "x"}, []string{"-v", "Acme", "--db_schema", "x"}},
		{"stops at terminator", []string{"--", "-db"}, []string{"--", "-db"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.in))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, "", "version")
	require.Equal(t, 0, res.code)
	assert.Equal(t, "dogen version dev (commit: none)\n", res.stdout)
}
