package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/danish45007/velocitybloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeys(t *testing.T) {
	keys, err := readKeys(strings.NewReader("alpha\r\n\nbeta\ngamma"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, keys)

	keys, err = readKeys(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLoadFilter(t *testing.T) {
	keys := []string{"alpha", "beta", "gamma"}
	filter, err := loadFilter(keys, 0.01)
	require.NoError(t, err)
	for _, key := range keys {
		assert.True(t, filter.Contains(key))
	}
	assert.Equal(t, uint64(len(keys)), filter.Inserted())

	// No keys still yields a usable, empty filter.
	filter, err = loadFilter(nil, 0.01)
	require.NoError(t, err)
	assert.False(t, filter.Contains("alpha"))

	_, err = loadFilter(keys, 1.5)
	require.Error(t, err)
}

func TestBuildFilter(t *testing.T) {
	cfg := velocitybloom.Config{
		ExpectedItems:     itemsFlag.Value,
		FalsePositiveRate: fpRateFlag.Value,
	}

	filter, err := buildFilter(cfg, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(32), filter.Capacity())
	assert.Equal(t, 3, filter.HashCount())

	filter, err = buildFilter(cfg, false)
	require.NoError(t, err)
	assert.Equal(t, uint32(9600), filter.Capacity())
	assert.Equal(t, 7, filter.HashCount())
}

func TestSyntheticKeys(t *testing.T) {
	assert.Equal(t, []string{"absent-0", "absent-1"}, syntheticKeys("absent", 2))
	assert.Empty(t, syntheticKeys("key", 0))
}

func TestSetLogLevels(t *testing.T) {
	require.NoError(t, setLogLevels("debug"))
	assert.Equal(t, btclog.LevelDebug, mainLog.Level())

	require.Error(t, setLogLevels("loud"))
	require.NoError(t, setLogLevels("info"))
}

// runApp runs the bloomprobe app with args and decodes its JSON output into
// resp.
func runApp(t *testing.T, resp interface{}, args ...string) error {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	if err := app.Run(append([]string{"bloomprobe"}, args...)); err != nil {
		return err
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), resp))
	return nil
}

func TestParamsCommand(t *testing.T) {
	var resp struct {
		CapacityBits uint32  `json:"capacity_bits"`
		Words        uint32  `json:"words"`
		HashCount    int     `json:"hash_count"`
		FPRate       float64 `json:"expected_fp_rate"`
	}
	err := runApp(t, &resp, "params", "--items", "1000", "--fp-rate", "0.01")
	require.NoError(t, err)
	assert.Equal(t, uint32(9600), resp.CapacityBits)
	assert.Equal(t, uint32(300), resp.Words)
	assert.Equal(t, 7, resp.HashCount)
	assert.InDelta(t, 0.01, resp.FPRate, 0.001)

	require.Error(t, runApp(t, &resp, "params", "--fp-rate", "1"))
}

type checkResponse struct {
	CapacityBits uint32 `json:"capacity_bits"`
	HashCount    int    `json:"hash_count"`
	Report       struct {
		TruePositives  int `json:"true_positives"`
		FalseNegatives int `json:"false_negatives"`
	} `json:"report"`
}

func TestCheckCommand(t *testing.T) {
	var resp checkResponse
	err := runApp(t, &resp, "check", "--items", "100", "--absent", "200")
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Report.TruePositives)
	assert.Zero(t, resp.Report.FalseNegatives)

	resp = checkResponse{}
	err = runApp(t, &resp, "check", "--default", "--items", "5",
		"--absent", "10")
	require.NoError(t, err)
	assert.Equal(t, uint32(32), resp.CapacityBits)
	assert.Equal(t, 3, resp.HashCount)
	assert.Equal(t, 5, resp.Report.TruePositives)
}

func TestCheckCommandRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{
			name: "negative absent",
			args: []string{"check", "--items", "10", "--absent=-1"},
			err:  errBadAbsent,
		},
		{
			name: "too many absent",
			args: []string{"check", "--items", "10", "--absent", "10000001"},
			err:  errBadAbsent,
		},
		{
			name: "no items",
			args: []string{"check", "--default", "--items", "0"},
			err:  errBadItems,
		},
		{
			name: "items wrap negative",
			args: []string{"check", "--default", "--items",
				"18446744073709551615"},
			err: errBadItems,
		},
		{
			name: "too many items",
			args: []string{"check", "--items", "10000001"},
			err:  errBadItems,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var resp checkResponse
			err := runApp(t, &resp, test.args...)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestQueryCommand(t *testing.T) {
	keysFile := filepath.Join(t.TempDir(), "keys")
	require.NoError(t, os.WriteFile(keysFile, []byte("alpha\nbeta\n"), 0o600))

	var resp struct {
		Loaded  int `json:"loaded"`
		Answers []struct {
			Key    string `json:"key"`
			Member string `json:"member"`
		} `json:"answers"`
	}
	err := runApp(t, &resp, "query", "--key", "alpha", "--key", "beta",
		"--key", "gamma", keysFile)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Loaded)
	require.Len(t, resp.Answers, 3)
	assert.Equal(t, "alpha", resp.Answers[0].Key)
	assert.Equal(t, "maybe", resp.Answers[0].Member)
	assert.Equal(t, "maybe", resp.Answers[1].Member)

	// gamma was never loaded, so either answer is allowed.
	assert.Contains(t, []string{"maybe", "no"}, resp.Answers[2].Member)

	err = runApp(t, &resp, "query", "--key", "alpha",
		filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
