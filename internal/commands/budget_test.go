package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_SetAndList(t *testing.T) {
	dir := initProject(t)

	out, err := runDre(t, "budget", "set", "Aluguel", "1500", "-C", dir, "--unit", "007", "--month", "2025-03")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Budget for Aluguel (unit 7, 2025-03) set to 1500.00")

	out, err = runDre(t, "budget", "list", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Aluguel")
	assert.Contains(t, out, "1500.00")

	out, err = runDre(t, "budget", "list", "-C", dir, "--unit", "7", "--month", "2025-04")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No budgets.")
}

func TestBudget_Upsert(t *testing.T) {
	dir := initProject(t)

	_, err := runDre(t, "budget", "set", "Aluguel", "1500", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.NoError(t, err)
	_, err = runDre(t, "budget", "set", "Aluguel", "1750.25", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.NoError(t, err)

	out, err := runDre(t, "budget", "list", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1750.25")
	assert.NotContains(t, out, "1500.00")
}

func TestBudget_AllUnitsRejected(t *testing.T) {
	dir := initProject(t)

	out, err := runDre(t, "budget", "set", "Aluguel", "1500", "-C", dir, "--unit", "all", "--month", "2025-03")
	require.Error(t, err)
	assert.Contains(t, out, "notice:")

	out, err = runDre(t, "budget", "log", "-C", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "rejected")
}

func TestBudget_NonEditableAccount(t *testing.T) {
	dir := initProject(t)

	out, err := runDre(t, "budget", "set", "receita-liquida", "100", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.Error(t, err)
	assert.Contains(t, out, "does not take budgets")

	out, err = runDre(t, "budget", "set", "Nada", "100", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.Error(t, err)
	assert.Contains(t, out, `unknown account "Nada"`)
}

func TestBudget_InvalidAmount(t *testing.T) {
	dir := initProject(t)
	out, err := runDre(t, "budget", "set", "Aluguel", "muito", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.Error(t, err)
	assert.Contains(t, out, "invalid amount")
}

func TestBudget_ShownInReport(t *testing.T) {
	dir := initProject(t)
	writeRecords(t, dir)

	_, err := runDre(t, "budget", "set", "Aluguel", "1333", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.NoError(t, err)

	out, err := runDre(t, "report", "-C", dir, "--month", "2025-03", "--expand-all", "--budget-unit", "7")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1333.00")

	out, err = runDre(t, "report", "-C", dir, "--month", "2025-03", "--expand-all")
	require.NoError(t, err, out)
	assert.NotContains(t, out, "1333.00", "aggregate view has no budgets")
}

func TestBudget_Log(t *testing.T) {
	dir := initProject(t)

	_, err := runDre(t, "budget", "set", "Aluguel", "1500", "-C", dir, "--unit", "7", "--month", "2025-03")
	require.NoError(t, err)

	out, err := runDre(t, "budget", "log", "-C", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Aluguel")
	assert.Contains(t, out, "2025-03")
	assert.Contains(t, out, "saved")
}
