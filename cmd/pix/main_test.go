package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/pix-flow/internal/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv is a config file and data directory private to one test.
type testEnv struct {
	dir    string
	config string
}

func newTestEnv(t *testing.T, backend string) testEnv {
	t.Helper()
	dir := t.TempDir()
	cfg := strings.Join([]string{
		"storage:",
		"  backend: " + backend,
		"  path: " + filepath.Join(dir, "pix.db"),
		"scanner:",
		"  source: " + filepath.Join(dir, "camera"),
		"payment:",
		"  processing_delay: 0s",
		"logging:",
		"  level: error",
		"  file: " + filepath.Join(dir, "pix.log"),
	}, "\n") + "\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return testEnv{dir: dir, config: path}
}

// run executes pix with args and stdin, returning stdout.
func (e testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	a := newApp()
	t.Cleanup(a.close)

	root := a.root()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", e.config}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetupAndProfile(t *testing.T) {
	for _, backend := range []string{"sqlite", "bolt"} {
		t.Run(backend, func(t *testing.T) {
			env := newTestEnv(t, backend)

			out, err := env.run(t, "", "profile")
			require.NoError(t, err)
			assert.Contains(t, out, "Nenhum perfil salvo")

			out, err = env.run(t, "", "setup", "--name", "  Maria Silva ", "--cpf", "123.456.789-00")
			require.NoError(t, err)
			assert.Contains(t, out, "Olá, Maria!")

			out, err = env.run(t, "", "profile")
			require.NoError(t, err)
			assert.Contains(t, out, "Maria Silva")
			assert.Contains(t, out, "123.456.789-00")
		})
	}
}

func TestSetupPrompts(t *testing.T) {
	env := newTestEnv(t, "sqlite")

	out, err := env.run(t, "Joana Souza\n987\n", "setup")
	require.NoError(t, err)
	assert.Contains(t, out, "Nome completo: ")
	assert.Contains(t, out, "CPF: ")
	assert.Contains(t, out, "Olá, Joana!")

	out, err = env.run(t, "", "setup", "--name", "Ana", "--cpf", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "Nome completo: ")
}

func TestSetupMissingFields(t *testing.T) {
	env := newTestEnv(t, "sqlite")

	_, err := env.run(t, "\n", "setup", "--name", "Maria")
	require.Error(t, err)
	assert.Equal(t, "Por favor, preencha todos os campos.", err.Error())

	out, err := env.run(t, "", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum perfil salvo")
}

func TestReset(t *testing.T) {
	env := newTestEnv(t, "sqlite")
	_, err := env.run(t, "", "setup", "--name", "Maria", "--cpf", "1")
	require.NoError(t, err)

	out, err := env.run(t, "n\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Nada foi apagado.")

	out, err = env.run(t, "", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Maria")

	out, err = env.run(t, "", "reset", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Perfil apagado.")

	out, err = env.run(t, "", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum perfil salvo")
}

func TestScan(t *testing.T) {
	env := newTestEnv(t, "sqlite")
	image, err := qrcode.Generate(qrcode.DemoPayload, filepath.Join(env.dir, "qr.jpg"))
	require.NoError(t, err)

	t.Run("shows the payment", func(t *testing.T) {
		out, err := env.run(t, "", "scan", image)
		require.NoError(t, err)
		assert.Contains(t, out, "Loja Exemplo - QR Scanned")
		assert.Contains(t, out, "R$ 50,00")
		assert.NotContains(t, out, "Comprovante")
	})

	t.Run("pays and prints the receipt", func(t *testing.T) {
		_, err := env.run(t, "", "setup", "--name", "Maria Silva", "--cpf", "123")
		require.NoError(t, err)

		out, err := env.run(t, "", "scan", "--pay", image)
		require.NoError(t, err)
		assert.Contains(t, out, "Comprovante de Pix")
		assert.Contains(t, out, "MARIA SILVA")
		assert.Contains(t, out, "ID da transação")
	})

	t.Run("image without code", func(t *testing.T) {
		_, err := env.run(t, "", "scan", filepath.Join(env.dir, "missing.png"))
		assert.Error(t, err)
	})

	t.Run("requires an image", func(t *testing.T) {
		_, err := env.run(t, "", "scan")
		assert.Error(t, err)
	})
}

func TestQR(t *testing.T) {
	env := newTestEnv(t, "sqlite")

	out, err := env.run(t, "", "qr")
	require.NoError(t, err)

	want := filepath.Join(env.dir, "camera", qrcode.DefaultFilename)
	assert.Contains(t, out, want)
	assert.FileExists(t, want)

	explicit := filepath.Join(env.dir, "out", "code.jpg")
	_, err = env.run(t, "", "qr", explicit)
	require.NoError(t, err)
	assert.FileExists(t, explicit)
}

func TestExtrato(t *testing.T) {
	env := newTestEnv(t, "sqlite")

	t.Run("text", func(t *testing.T) {
		out, err := env.run(t, "", "extrato")
		require.NoError(t, err)
		assert.Contains(t, out, "Extrato")
		assert.Contains(t, out, "Saldo")
		assert.Contains(t, out, "Pix enviado")
		assert.Contains(t, out, "Loja Exemplo")
	})

	t.Run("ofx to file", func(t *testing.T) {
		path := filepath.Join(env.dir, "extrato.ofx")
		_, err := env.run(t, "", "extrato", "--format", "ofx", "--output", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<CURDEF>BRL")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := env.run(t, "", "extrato", "--format", "csv")
		assert.Error(t, err)
	})
}

func TestInvalidConfig(t *testing.T) {
	env := newTestEnv(t, "mongo")

	_, err := env.run(t, "", "profile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage backend")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, "sqlite")

	out, err := env.run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pix dev\n", out)
}

func TestUsesAltScreen(t *testing.T) {
	a := newApp()
	root := a.root()

	assert.True(t, usesAltScreen(root))
	for _, c := range root.Commands() {
		assert.Equal(t, c.Name() == "app", usesAltScreen(c), c.Name())
	}
}
