package project

import (
	"crypto/rand"
	"path/filepath"
	"strings"

	"github.com/webstrap-cli/webstrap/internal/defs"
)

// SecretLength is the length of the generated auth secret.
const SecretLength = 32

const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvPrefix returns the client-exposed environment variable prefix for
// the framework (Next.js inlines NEXT_PUBLIC_*, Vite inlines VITE_*).
func EnvPrefix(fw Framework) string {
	if fw == FrameworkNext {
		return "NEXT_PUBLIC_"
	}
	return "VITE_"
}

// GenerateSecret returns a random alphanumeric string of length n.
func GenerateSecret(n int) string {
	buf := make([]byte, n)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = secretAlphabet[int(buf[i])%len(secretAlphabet)]
	}
	return string(buf)
}

// WriteEnvFile writes the rendered env content under root with
// create-if-absent semantics, so a re-run never destroys user secrets.
// It reports whether a new file was created.
func WriteEnvFile(root string, content []byte) (bool, error) {
	return WriteFileIfAbsent(filepath.Join(root, defs.EnvFile), content)
}

// GitIgnoreEnvBlock is appended to the generated project's .gitignore
// when it does not already exclude env files.
const GitIgnoreEnvBlock = "\n# local env files\n.env\n.env.local\n.env*.local\n"

// AppendGitIgnoreEnv appends env exclusions to root/.gitignore unless an
// .env entry is already present. Missing .gitignore is created.
func AppendGitIgnoreEnv(root string) error {
	path := filepath.Join(root, defs.GitIgnore)

	existing, err := readFileIfExists(path)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(existing, "\n") {
		if strings.TrimSpace(line) == ".env" {
			return nil
		}
	}
	return WriteFile(path, []byte(existing+GitIgnoreEnvBlock))
}
