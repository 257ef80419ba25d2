package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-seis/internal/config"
	"github.com/cwbudde/algo-seis/internal/testutil"
	"github.com/cwbudde/algo-seis/seis/welllog"
)

func TestRunWavelet(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().Wavelet
	cfg.Figure = filepath.Join(dir, "ricker.png")
	cfg.Table = filepath.Join(dir, "ricker.csv")

	res, err := RunWavelet(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 265, res.Wavelet.Len())
	assert.InDelta(t, 40, res.SpectralPeak, 0.5)
	assert.Contains(t, res.String(), "265 samples")

	info, err := os.Stat(cfg.Figure)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	tab, err := welllog.LoadTable(cfg.Table)
	require.NoError(t, err)
	amp, ok := tab.Column("amplitude")
	require.True(t, ok)
	assert.Equal(t, 1.0, amp[132])
}

func TestRunWaveletInvalid(t *testing.T) {
	cfg := config.Default().Wavelet
	cfg.Axis = "sideways"
	_, err := RunWavelet(cfg, nil)
	require.Error(t, err)
}

func fiveSampleConfig(t *testing.T, fx testutil.WellLogFixture) config.Config {
	t.Helper()
	wellPath, petroPath := fx.WriteFiles(t)
	dir := t.TempDir()

	cfg := config.Default()
	cfg.RockPhysics.WellLog = wellPath
	cfg.RockPhysics.Petrophysical = petroPath
	cfg.RockPhysics.Output = filepath.Join(dir, "rockphysics.csv")
	cfg.RockPhysics.Figure = filepath.Join(dir, "rockphysics.png")
	return cfg
}

func TestRunRockPhysicsFiveSampleWell(t *testing.T) {
	cfg := fiveSampleConfig(t, testutil.FiveSampleWell())

	res, err := RunRockPhysics(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, res.DegenerateSamples())

	tab, err := welllog.LoadTable(cfg.RockPhysics.Output)
	require.NoError(t, err)
	assert.Equal(t, []string{"p_velocity", "s_velocity", "rho_log", "VpOverVs", "poisson_ratio", "acoustic_impedance"}, tab.Header)
	require.Equal(t, 5, tab.Rows())

	vp, _ := tab.Column("p_velocity")
	testutil.RequireSliceNearlyEqual(t, vp, []float64{3.048, 3.048, 3.048, 3.048, 3.048}, 1e-12)
	rho, _ := tab.Column("rho_log")
	testutil.RequireSliceNearlyEqual(t, rho, []float64{2.0, 2.6, 2.65, 2.65, 2.65}, 0)
	ai, _ := tab.Column("acoustic_impedance")
	assert.InDelta(t, 3.048*2.65, ai[2], 1e-12)

	// The exported table reproduces the in-memory attributes bit for bit.
	for i, col := range res.Attributes.Table().Columns {
		testutil.RequireSliceNearlyEqual(t, tab.Columns[i], col, 0)
	}

	info, err := os.Stat(cfg.RockPhysics.Figure)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// 5100 and 5200 fall in the upper zone, 5300 in the middle, 5400 and
	// 5450 in the lower; three attributes each.
	require.Len(t, res.Zones, 9)
	assert.Equal(t, 2, res.Zones[0].Count)
	assert.Equal(t, 1, res.Zones[3].Count)
	assert.Equal(t, 2, res.Zones[6].Count)
}

func TestRunRockPhysicsDegeneracyWarns(t *testing.T) {
	fx := testutil.FiveSampleWell()
	fx.Sonic = []float64{100, 0, 100, 100, 100}
	cfg := fiveSampleConfig(t, fx)
	cfg.RockPhysics.Figure = ""

	core, logs := observer.New(zap.WarnLevel)
	res, err := RunRockPhysics(cfg, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 1, res.DegenerateSamples())
	assert.True(t, math.IsInf(res.Attributes.PVelocity[1], 1))

	assert.NotZero(t, logs.FilterMessage("numeric degeneracy").Len())
	assert.Equal(t, 1, logs.FilterMessage("attributes undefined at some depths").Len())

	tab, err := welllog.LoadTable(cfg.RockPhysics.Output)
	require.NoError(t, err)
	vp, _ := tab.Column("p_velocity")
	assert.True(t, math.IsInf(vp[1], 1))
}

func TestRunRockPhysicsInputErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := fiveSampleConfig(t, testutil.FiveSampleWell())
		cfg.RockPhysics.WellLog = filepath.Join(t.TempDir(), "absent.csv")
		_, err := RunRockPhysics(cfg, nil)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		cfg := fiveSampleConfig(t, testutil.FiveSampleWell())
		cfg.RockPhysics.Petrophysical = testutil.WriteCSV(t, "short.csv",
			[]string{"vsh", "vsand"}, []float64{0.5}, []float64{0.5})
		_, err := RunRockPhysics(cfg, nil)
		require.ErrorIs(t, err, welllog.ErrRowCount)
	})

	t.Run("missing column", func(t *testing.T) {
		cfg := fiveSampleConfig(t, testutil.FiveSampleWell())
		cfg.RockPhysics.WellLog = testutil.WriteCSV(t, "nosonic.csv",
			[]string{"depth", "rhob"}, []float64{5100}, []float64{2.3})
		_, err := RunRockPhysics(cfg, nil)
		require.ErrorIs(t, err, welllog.ErrMissingColumn)
	})
}
