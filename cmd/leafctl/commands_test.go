package main

import (
	"bytes"
	"testing"

	"leafcare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetRequiresConfirmation(t *testing.T) {
	flagResetYes = false

	err := resetCmd.RunE(resetCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestReport(t *testing.T) {
	defer func() { flagJSON = false }()

	var buf bytes.Buffer
	flagJSON = false
	require.NoError(t, report(&buf, map[string]int{"sent": 2}, "sent %d notifications", 2))
	assert.Equal(t, "sent 2 notifications\n", buf.String())

	buf.Reset()
	flagJSON = true
	require.NoError(t, report(&buf, map[string]int{"sent": 2}, "sent %d notifications", 2))
	assert.JSONEq(t, `{"sent":2}`, buf.String())
}

func TestScanRequiresPayload(t *testing.T) {
	require.Error(t, scanCmd.Args(scanCmd, nil))
	require.NoError(t, scanCmd.Args(scanCmd, []string{`{"plantId":"x"}`}))
}

func TestPlantLocationName(t *testing.T) {
	assert.Equal(t, "unknown location", plantLocationName(&entity.Plant{}))
	assert.Equal(t, "Varanda", plantLocationName(&entity.Plant{Location: &entity.Location{Name: "Varanda"}}))
}
