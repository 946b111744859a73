// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/testutil"
)

func TestNewTemplateListCmd(t *testing.T) {
	cmd := NewTemplateListCmd()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("templates-dir"))
}

func TestTemplateList_Execute(t *testing.T) {
	root := t.TempDir()
	testutil.WriteValidTemplate(t, root, "cluster-security")
	testutil.WriteValidTemplate(t, root, "network-policies")

	cmd := NewTemplateListCmd()
	cmd.SetArgs([]string{"--templates-dir", root})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	// Note: the table goes to stdout, not cmd.SetOut(). We verify the
	// command executes without error.
	assert.NoError(t, cmd.Execute())
}

func TestTemplateList_EmptyTree(t *testing.T) {
	cmd := NewTemplateListCmd()
	cmd.SetArgs([]string{"--templates-dir", t.TempDir()})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.NoError(t, cmd.Execute())
}

func TestTemplateList_MissingRoot(t *testing.T) {
	cmd := NewTemplateListCmd()
	cmd.SetArgs([]string{"--templates-dir", filepath.Join(t.TempDir(), "missing")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitGeneralError, exitErr.Code)
}
