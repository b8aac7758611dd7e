package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunDepthSweep(t *testing.T) {
	root := t.TempDir()

	err := RunDepthSweep([]int{1, 3}, root)
	require.NoError(t, err)

	dirs, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, dirs, 1, "One timestamped directory per sweep")
	base := filepath.Join(root, dirs[0].Name())

	f, err := os.Open(filepath.Join(base, "games.csv"))
	require.NoError(t, err)
	defer f.Close()
	games, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, games, 3, "Header plus one game per depth")
	require.Equal(t, "1", games[1][1])
	require.Equal(t, "3", games[2][1])

	mf, err := os.Open(filepath.Join(base, "moves.csv"))
	require.NoError(t, err)
	defer mf.Close()
	moves, err := csv.NewReader(mf).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(moves), 2, "Every move of every game gets a row")
}
