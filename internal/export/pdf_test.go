package export

import (
	"os"
	"path/filepath"
	"testing"

	"ChalkTalk/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFWritesSnapshot(t *testing.T) {
	sess := board.NewSession()
	sess.Enqueue([]board.Command{
		board.NewGraph("x*x", [2]float64{-10, 10}, 1500),
		board.NewAnnotation("vertex", 0, 0),
		board.NewDiagram(board.Diagram{Kind: board.DiagramMolecule, Content: "h2o"}),
	})

	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, PDF(path, sess))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(1000), "page should contain real content")
}
