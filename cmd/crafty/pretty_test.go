package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crafty-lang/crafty"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	assert.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	assert.NoError(t, err)
	return buf.String()
}

func TestPrintProgramASTReconstructsSource(t *testing.T) {
	out := captureStdout(t, func() {
		err := printProgramAST(`var x = 1 + 2 * 3; print x;`)
		assert.NoError(t, err)
	})
	assert.Contains(t, out, "ast> var x = 1 + 2 * 3;")
	assert.Contains(t, out, "ast> print x;")
}

func TestPrettyOutputReparsesToEquivalentShape(t *testing.T) {
	source := `if (1 < 2) { print "a"; } else { print "b"; }`
	tokens := crafty.NewScanner(source, nil).Filtered()
	program, err := crafty.NewParser(tokens).Parse()
	assert.NoError(t, err)

	reconstructed := prettyStmt(program.Statements[0])
	tokens2 := crafty.NewScanner(reconstructed, nil).Filtered()
	program2, err := crafty.NewParser(tokens2).Parse()
	assert.NoError(t, err)

	_, ok := program2.Statements[0].(*crafty.IfStmt)
	assert.True(t, ok)
}

func TestPrintProgramASTPropagatesParseError(t *testing.T) {
	err := printProgramAST(`1 = 2;`)
	assert.Error(t, err)
}
