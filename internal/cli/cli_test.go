package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/hoopscout/internal/adapters/http/api"
	service "github.com/okian/hoopscout/internal/app"
	"github.com/okian/hoopscout/internal/cli"
	"github.com/okian/hoopscout/internal/domain/model"
	"github.com/okian/hoopscout/internal/domain/report"
	"github.com/okian/hoopscout/pkg/logger"
)

const shortReport = `Player Name: Sam
Offense
Shooting: 8
Defense
Perimeter: 6
Physicals
Athleticism: 7
Summary
NBA Ready: 4`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SCOUT_CONFIG", "")

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	require.NoError(t, logger.Init(logger.WithOutput(&bytes.Buffer{})))

	svc := service.New(service.WithLogger(logger.Discard()))
	mux := http.NewServeMux()
	api.NewServer(svc, svc, svc.MaxReportBytes()).Register(context.Background(), mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAthleticism_Local(t *testing.T) {
	out, _, err := run(t, "", "athleticism", "--speed", "70", "--agility", "70", "--vertical", "74.5")
	require.NoError(t, err)

	assert.Contains(t, out, "Athleticism percentiles")
	assert.Contains(t, out, "Speed:")
	assert.Regexp(t, `Overall:\s+50\.0`, out)
}

func TestAthleticism_JSON(t *testing.T) {
	out, _, err := run(t, "", "athleticism", "--json", "--speed", "95", "--agility", "45", "--vertical", "74.5")
	require.NoError(t, err)

	var res map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 100.0, res["speed"])
	assert.Equal(t, 0.0, res["agility"])
	assert.Equal(t, 50.0, res["vertical"])
	assert.Equal(t, 50.0, res["overall"])
}

func TestAthleticism_OutOfRange(t *testing.T) {
	_, _, err := run(t, "", "athleticism", "--speed", "10", "--agility", "70", "--vertical", "70")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAthleticism_MissingFlag(t *testing.T) {
	_, _, err := run(t, "", "athleticism", "--speed", "70")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestProspect_Local(t *testing.T) {
	out, _, err := run(t, "", "prospect", "--age", "19", "--height", `6'5`, "--wingspan", `6'10`, "--position", "sg")
	require.NoError(t, err)

	assert.Contains(t, out, "Prospect rating")
	assert.Contains(t, out, "+5.0 in")
	assert.Regexp(t, `Overall:\s+81\.1 / 100`, out)
}

func TestProspect_BareInches(t *testing.T) {
	out, _, err := run(t, "", "prospect", "--json", "--age", "19", "--height", "77", "--wingspan", "82", "--position", "SG")
	require.NoError(t, err)

	var res map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 81.1, res["overall"])
	assert.Equal(t, 5.0, res["wingspan_differential"])
}

func TestProspect_BadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad height", []string{"--height", "tall", "--wingspan", "82", "--position", "SG"}},
		{"inches out of range", []string{"--height", `6'12`, "--wingspan", "82", "--position", "SG"}},
		{"unknown position", []string{"--height", "77", "--wingspan", "82", "--position", "G"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"prospect", "--age", "19"}, tt.args...)
			_, _, err := run(t, "", args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestReport_Stdin(t *testing.T) {
	out, _, err := run(t, shortReport, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "Sam")
	assert.Regexp(t, `Offense:\s+8\.0`, out)
	assert.Regexp(t, `Overall:\s+6\.3`, out)
}

func TestReport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sam.md")
	require.NoError(t, os.WriteFile(path, []byte(shortReport), 0o600))

	out, _, err := run(t, "", "report", "--json", path)
	require.NoError(t, err)

	var avg report.Averages
	require.NoError(t, json.Unmarshal([]byte(out), &avg))
	assert.Equal(t, "Sam", avg.PlayerName)
	assert.Equal(t, 6.3, avg.Overall.Float())
}

func TestReport_Failures(t *testing.T) {
	_, _, err := run(t, "one\ntwo", "report", "-")
	assert.ErrorIs(t, err, report.ErrParseReport)

	_, _, err = run(t, report.Placeholder, "report")
	assert.ErrorIs(t, err, report.ErrNoRatings)

	_, _, err = run(t, "", "report", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read report")
}

func TestTemplate_Local(t *testing.T) {
	out, _, err := run(t, "", "template")
	require.NoError(t, err)
	assert.Equal(t, report.Placeholder, out)
}

func TestRemote(t *testing.T) {
	srv := newServer(t)

	t.Run("athleticism", func(t *testing.T) {
		out, _, err := run(t, "", "--url", srv.URL, "--json", "athleticism", "--speed", "70", "--agility", "70", "--vertical", "74.5")
		require.NoError(t, err)
		assert.Contains(t, out, `"overall": 50`)
	})

	t.Run("prospect", func(t *testing.T) {
		out, _, err := run(t, "", "--url", srv.URL, "prospect", "--age", "19", "--height", `6'5`, "--wingspan", `6'10`, "--position", "SG")
		require.NoError(t, err)
		assert.Regexp(t, `Overall:\s+81\.1 / 100`, out)
	})

	t.Run("report", func(t *testing.T) {
		out, _, err := run(t, shortReport, "--url", srv.URL+"/", "report")
		require.NoError(t, err)
		assert.Regexp(t, `Overall:\s+6\.3`, out)
	})

	t.Run("template", func(t *testing.T) {
		out, _, err := run(t, "", "--url", srv.URL, "template")
		require.NoError(t, err)
		assert.Equal(t, report.Placeholder, out)
	})

	t.Run("errors map to domain sentinels", func(t *testing.T) {
		_, _, err := run(t, "", "--url", srv.URL, "athleticism", "--speed", "10", "--agility", "70", "--vertical", "70")
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		var apiErr *cli.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)

		_, _, err = run(t, "one\ntwo", "--url", srv.URL, "report")
		assert.ErrorIs(t, err, report.ErrParseReport)

		_, _, err = run(t, report.Placeholder, "--url", srv.URL, "report")
		assert.ErrorIs(t, err, report.ErrNoRatings)
	})
}

func TestProspect_LocalMatchesRemote(t *testing.T) {
	srv := newServer(t)
	args := []string{"--json", "prospect", "--age", "19", "--height", "76.45", "--wingspan", "79.7", "--position", "SF"}

	localOut, _, err := run(t, "", args...)
	require.NoError(t, err)
	remoteOut, _, err := run(t, "", append([]string{"--url", srv.URL}, args...)...)
	require.NoError(t, err)

	var local, remote map[string]float64
	require.NoError(t, json.Unmarshal([]byte(localOut), &local))
	require.NoError(t, json.Unmarshal([]byte(remoteOut), &remote))
	assert.Equal(t, local, remote)
	assert.Equal(t, 5.0, remote["height_rating"])
	assert.Equal(t, 5.5, remote["wingspan_rating"])
	assert.Equal(t, 3.25, remote["wingspan_differential"])
}

func TestRemote_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, _, err := run(t, "", "--url", url, "--timeout", "1s", "template")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /report/template")
}

func TestReport_Batch(t *testing.T) {
	dir := t.TempDir()
	sam := filepath.Join(dir, "sam.md")
	blank := filepath.Join(dir, "blank.md")
	require.NoError(t, os.WriteFile(sam, []byte(shortReport), 0o600))
	require.NoError(t, os.WriteFile(blank, []byte(report.Placeholder), 0o600))

	t.Run("all succeed", func(t *testing.T) {
		out, _, err := run(t, "", "report", "--workers", "2", sam, sam)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out, "Sam"))
	})

	t.Run("json keeps input order and failures", func(t *testing.T) {
		out, stderr, err := run(t, "", "report", "--json", blank, sam)
		require.Error(t, err)
		assert.ErrorIs(t, err, cli.ErrBatchFailed)
		assert.Contains(t, stderr, "blank.md: no valid numeric data")

		var entries []struct {
			Source   string           `json:"source"`
			Averages *report.Averages `json:"averages"`
			Error    string           `json:"error"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, blank, entries[0].Source)
		assert.Nil(t, entries[0].Averages)
		assert.NotEmpty(t, entries[0].Error)
		require.NotNil(t, entries[1].Averages)
		assert.Equal(t, "Sam", entries[1].Averages.PlayerName)
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, _, err := run(t, "", "report", sam, filepath.Join(dir, "missing.md"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read report")
	})
}
