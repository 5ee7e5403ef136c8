package levels_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	var skipped []string
	loader.OnSkip = func(path string, err error) {
		skipped = append(skipped, path)
	}

	lvls, err := loader.LoadAll()
	require.NoError(t, err)

	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"lvl01", "lvl02", "lvl03"}, ids)
	assert.ElementsMatch(t, []string{"broken-chars.flow", "broken-unpaired.yaml", "broken-yaml.yaml"}, skipped)
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl01")
	require.NoError(t, err)

	assert.Equal(t, "Intro", lvl.Name)
	assert.Equal(t, "tests", lvl.Author)
	assert.Equal(t, 3, lvl.Grid.W)
	assert.Equal(t, 3, lvl.Grid.H)
	assert.Equal(t, "easy", lvl.Metadata["difficulty"])
	assert.Equal(t, filepath.Join(getTestdataPath(), "lvl01.yaml"), lvl.FilePath)
	assert.Equal(t, "A.B\n...\nA.B", lvl.Layout())
}

func TestLoaderLoadText(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl02")
	require.NoError(t, err)

	assert.Equal(t, "Lvl02", lvl.Name)
	assert.Equal(t, board.Stats{Width: 4, Height: 2, TotalCells: 8, Flows: 2, EmptyCells: 4}, lvl.Stats())
}

func TestLoaderNameDefaultsToID(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadFile("nested/lvl03.yml")
	require.NoError(t, err)
	assert.Equal(t, "lvl03", lvl.Name)
}

func TestLoaderLoadByIDNotFound(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	_, err := loader.LoadByID("nope")
	assert.ErrorIs(t, err, levels.ErrLevelNotFound)
}

func TestLoaderRejectsInvalidFiles(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	_, err := loader.LoadFile("broken-unpaired.yaml")
	assert.ErrorIs(t, err, board.ErrUnpairedFlow)

	_, err = loader.LoadFile("broken-chars.flow")
	assert.ErrorIs(t, err, board.ErrMalformedLevel)

	_, err = loader.LoadFile("missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPath(t *testing.T) {
	lvl, err := levels.LoadPath(filepath.Join(getTestdataPath(), "lvl02.txt"))
	require.NoError(t, err)
	assert.Equal(t, "lvl02", lvl.ID)
}

func TestLoaderDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("id: same\nname: First\nlayout: \"A.A\"\n")},
		"b.yaml": {Data: []byte("id: same\nname: Second\nlayout: \"B.B\"\n")},
	}
	loader := levels.NewFSLoader(fsys, "mem")

	lvls, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 1)
	assert.Equal(t, "First", lvls[0].Name)
}

func TestNewBoardIsIndependent(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())
	lvl, err := loader.LoadByID("lvl01")
	require.NoError(t, err)

	b := lvl.NewBoard()
	require.Equal(t, board.ToggleGrabbed, b.Toggle())
	require.Equal(t, board.MoveExtended, b.Move(board.East))

	assert.True(t, lvl.Grid.Get(board.C(1, 0)).IsEmpty())
	assert.Equal(t, board.DirNone, lvl.Grid.Get(board.C(0, 0)).To)
}
