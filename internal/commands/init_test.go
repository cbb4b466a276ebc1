package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/dre/internal/accounts"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "dre-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "dre")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/dre")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runDre(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "DRE_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// initProject creates a project without git in a fresh directory.
func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runDre(t, "init", dir, "--name", "Padaria Central", "--no-git")
	require.NoError(t, err, out)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initProject(t)

	expected := []string{
		"dre.yaml",
		".gitignore",
		"units.csv",
		filepath.Join("accounts", "chart-of-accounts.csv"),
		filepath.Join("records", "revenue.csv"),
		filepath.Join("records", "cost_of_goods.csv"),
		filepath.Join("records", "ledger.csv"),
	}
	for _, f := range expected {
		_, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, "%s should exist", f)
	}

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInit_Config(t *testing.T) {
	dir := initProject(t)

	data, err := os.ReadFile(filepath.Join(dir, "dre.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Padaria Central")
	assert.Contains(t, contents, "budget_db: budgets.db")
	assert.Contains(t, contents, "Juros de Empréstimos")
}

func TestInit_Accounts(t *testing.T) {
	dir := initProject(t)

	f, err := os.Open(accounts.ChartPath(dir))
	require.NoError(t, err)
	defer f.Close()

	nodes, err := accounts.ReadNodes(f)
	require.NoError(t, err)
	assert.Len(t, nodes, len(accounts.DefaultChart()))
}

func TestInit_RecordHeaders(t *testing.T) {
	dir := initProject(t)

	data, err := os.ReadFile(filepath.Join(dir, "records", "ledger.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,amount,account,unit,kind\n", string(data))
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runDre(t, "init", t.TempDir())
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RefusesExistingProject(t *testing.T) {
	dir := initProject(t)
	out, err := runDre(t, "init", dir, "--name", "Outra", "--no-git")
	require.Error(t, err)
	assert.Contains(t, out, "dre.yaml already exists")
}

func TestInit_GitRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	_, err := runDre(t, "init", dir, "--name", "Padaria Central")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s|%an <%ae>", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: Initialize Padaria Central")
	assert.Contains(t, string(out), "DRE <dre@localhost>")

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "budgets.db")
}
