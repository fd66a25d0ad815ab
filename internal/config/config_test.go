package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/quiver/internal/session"
)

func TestWithViperConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg, err := New(WithViperConfig(path))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config file to be written: %v", err)
	}

	want := &Config{
		Scoring: ScoringConfig{
			AutosaveDelay: 500 * time.Millisecond,
			Notify:        true,
		},
		Compare: CompareConfig{Target: session.Face40cm, Distance: 18},
		Defaults: DefaultsConfig{
			Kind:        session.Training,
			Environment: session.Indoor,
			Target:      session.Face40cm,
			Distance:    18,
		},
		Display: DisplayConfig{DarkTheme: true},
		Server:  ServerConfig{Port: 1111},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestWithViperConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	content := `scoring:
  autosave_delay: 750
  notify: false
compare:
  target: tri spot
  distance: 25
defaults:
  kind: competizione
server:
  port: 8080
`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := New(WithViperConfig(path))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Scoring.AutosaveDelay != 750*time.Millisecond {
		t.Errorf("expected a bare number to be read as milliseconds, got %v", cfg.Scoring.AutosaveDelay)
	}

	if cfg.Scoring.Notify {
		t.Error("expected notifications to be disabled")
	}

	if cfg.Compare.Target != session.Trispot || cfg.Compare.Distance != 25 {
		t.Errorf("unexpected compare config: %+v", cfg.Compare)
	}

	if cfg.Defaults.Kind != session.Competition {
		t.Errorf("expected legacy kind to be canonicalised, got %q", cfg.Defaults.Kind)
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("unexpected address %s", cfg.Addr())
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Scoring: ScoringConfig{AutosaveDelay: time.Second},
			Compare: CompareConfig{Target: session.Face40cm, Distance: 18},
			Server:  ServerConfig{Port: 1111},
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"autosave too short", func(c *Config) { c.Scoring.AutosaveDelay = time.Millisecond }, errInvalidAutosaveDelay},
		{"compare distance missing", func(c *Config) { c.Compare.Distance = 0 }, errInvalidDistance},
		{"unknown compare target", func(c *Config) { c.Compare.Target = "80cm" }, errUnknownTarget},
		{"unknown default kind", func(c *Config) { c.Defaults.Kind = "Sparring" }, errUnknownKind},
		{"unknown environment", func(c *Config) { c.Defaults.Environment = "Space" }, errUnknownEnvironment},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, errInvalidPort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)

			err := c.Validate()

			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestApplyCLIOptions(t *testing.T) {
	c := &Config{
		Scoring: ScoringConfig{AutosaveDelay: time.Second, Notify: true},
		Compare: CompareConfig{Target: session.Face40cm, Distance: 18},
		Server:  ServerConfig{Port: 1111},
	}

	err := applyCLIOptions(c, CLIOptions{
		AutosaveDelay:   "2s",
		CompareTarget:   "60 cm",
		CompareDistance: 30,
		Port:            9000,
		DisableNotify:   true,
	})
	if err != nil {
		t.Fatal(err)
	}

	if c.Scoring.AutosaveDelay != 2*time.Second || c.Scoring.Notify {
		t.Errorf("unexpected scoring config: %+v", c.Scoring)
	}

	if c.Compare.Target != session.Face60cm || c.Compare.Distance != 30 {
		t.Errorf("unexpected compare config: %+v", c.Compare)
	}

	if c.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", c.Server.Port)
	}

	if err := applyCLIOptions(c, CLIOptions{AutosaveDelay: "soon"}); err == nil {
		t.Error("expected an invalid duration to be rejected")
	}
}

func TestApplyMetaOptions(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	defaults := session.Meta{Kind: session.Training, Distance: 18}

	meta, err := applyMetaOptions(defaults, MetaOptions{
		Name:     "  Club shoot ",
		Date:     "2025-06-01",
		Kind:     "competition",
		Target:   "tri spot",
		Distance: 25,
	}, now)
	if err != nil {
		t.Fatal(err)
	}

	if meta.Name != "Club shoot" || meta.Kind != session.Competition ||
		meta.TargetType != session.Trispot || meta.Distance != 25 {
		t.Errorf("unexpected meta: %+v", meta)
	}

	if meta.Date.Day() != 1 || meta.Date.Month() != time.June {
		t.Errorf("unexpected date: %v", meta.Date)
	}

	_, err = applyMetaOptions(defaults, MetaOptions{Environment: "space"}, now)
	if !errors.Is(err, errUnknownEnvironment) {
		t.Errorf("expected unknown environment error, got %v", err)
	}
}

func TestNewFilter(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		opts    FilterOptions
		want    *FilterConfig
		wantErr error
	}{
		{
			name: "no options match everything",
			opts: FilterOptions{},
			want: &FilterConfig{},
		},
		{
			name: "period",
			opts: FilterOptions{Period: "7days", Kind: "training"},
			want: &FilterConfig{
				StartTime: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC),
				Kind:      session.Training,
			},
		},
		{
			name: "explicit range and attributes",
			opts: FilterOptions{
				From:        "2025-06-01",
				To:          "2025-06-10",
				Environment: "outdoor",
				Target:      "120 cm",
				Distance:    70,
			},
			want: &FilterConfig{
				StartTime:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				EndTime:     time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC),
				Environment: session.Outdoor,
				TargetType:  session.Face120cm,
				Distance:    70,
			},
		},
		{
			name:    "unknown period",
			opts:    FilterOptions{Period: "fortnight"},
			wantErr: errInvalidPeriod,
		},
		{
			name:    "reversed range",
			opts:    FilterOptions{From: "2025-06-10", To: "2025-06-01"},
			wantErr: errInvalidDateRange,
		},
		{
			name:    "unknown kind",
			opts:    FilterOptions{Kind: "Sparring"},
			wantErr: errUnknownKind,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewFilter(tc.opts, now)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("filter mismatch (-want +got):\n%s", diff)
			}

			q := got.Query()
			if q.Kind != got.Kind || !q.From.Equal(got.StartTime) {
				t.Errorf("query does not mirror the filter: %+v", q)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	c := &Config{Compare: CompareConfig{Target: session.Face40cm, Distance: 18}}

	if !strings.Contains(c.String(), "40cm@18m") {
		t.Errorf("unexpected summary %q", c.String())
	}
}
