package accounts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleared-dev/dre/internal/model"
)

// ChartPath returns the location of the chart file inside a project root.
func ChartPath(root string) string {
	return filepath.Join(root, "accounts", "chart-of-accounts.csv")
}

// Load reads and builds the project chart. A project without a chart file
// uses DefaultChart.
func Load(root string) (*Tree, error) {
	nodes, err := ReadChart(root)
	if err != nil {
		return nil, err
	}
	return Build(nodes)
}

// ReadChart reads the project chart rows, or DefaultChart when there is no
// chart file.
func ReadChart(root string) ([]model.AccountNode, error) {
	f, err := os.Open(ChartPath(root))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultChart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	nodes, err := ReadNodes(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return nodes, nil
}

// Save writes nodes to accounts/chart-of-accounts.csv under root.
func Save(root string, nodes []model.AccountNode) error {
	path := ChartPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteNodes(f, nodes); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
