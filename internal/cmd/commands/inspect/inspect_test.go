package inspect

import (
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brfiscal/cadastro/internal/cmd/base"
)

func newTestCommand() (*Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	return &Command{
		Command: base.NewCommand(hclog.NewNullLogger(), ui),
	}, ui
}

func TestInspect(t *testing.T) {
	c, ui := newTestCommand()

	code := c.Run([]string{"280.012.389-38"})

	assert.Equal(t, 0, code)
	out := ui.OutputWriter.String()
	assert.Contains(t, out, "280.012.389-38")
	assert.Contains(t, out, "28001238")
	assert.Contains(t, out, "Fiscal region: 9")
	assert.Contains(t, out, "Check digits:  38")
	assert.Contains(t, out, "Valid:         yes")
}

func TestInspect_InvalidNumberStillInspects(t *testing.T) {
	c, ui := newTestCommand()

	code := c.Run([]string{"123.456.789-10"})

	assert.Equal(t, 0, code, "inspection does not require validity")
	assert.Contains(t, ui.OutputWriter.String(), "Valid:         no")
}

func TestInspect_JSON(t *testing.T) {
	c, ui := newTestCommand()

	code := c.Run([]string{"-json", "280.012.389-38"})
	require.Equal(t, 0, code)

	var got report
	require.NoError(t, json.Unmarshal(ui.OutputWriter.Bytes(), &got))
	assert.Equal(t, report{
		CPF:          "280.012.389-38",
		Digits:       "28001238938",
		RandomDigits: "28001238",
		RegionDigit:  "9",
		Region:       9,
		CheckDigits:  "38",
		Valid:        true,
	}, got)
}

func TestInspect_RegionTen(t *testing.T) {
	c, ui := newTestCommand()

	code := c.Run([]string{"123.456.780-00"})

	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), "Fiscal region: 10")
}

func TestInspect_MalformedInput(t *testing.T) {
	c, ui := newTestCommand()

	code := c.Run([]string{"abcd"})

	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "abcd")
}
