package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanksCommand_ListsFormats(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"banks"})

	require.NoError(t, root.Execute())

	banks := strings.Fields(out.String())
	assert.Len(t, banks, 15)
	assert.Contains(t, banks, "bbva")
	assert.Contains(t, banks, "santander")
	assert.Contains(t, banks, "nu")
}

func TestExtractCommand_RequiresBank(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"extract", "statement.pdf"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bank")
}

func TestExtractCommand_MissingOverlayFile(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"extract", "statement.pdf", "--bank", "bbva", "--profile", "/nonexistent.yaml"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile overrides")
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, "csv", resolveFormat("", ""))
	assert.Equal(t, "csv", resolveFormat("", "out.csv"))
	assert.Equal(t, "xlsx", resolveFormat("", "out.XLSX"))
	assert.Equal(t, "xlsx", resolveFormat("XLSX", "out.csv"))
}
